package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/malimedia/campaign-entries/internal/campaign"
	"github.com/malimedia/campaign-entries/internal/lead"
	"github.com/malimedia/campaign-entries/internal/pipeline"
)

// Handlers holds the HTTP handlers and their collaborators.
type Handlers struct {
	provider campaign.Provider
	pipeline *pipeline.Pipeline
}

// NewHandlers creates the handler set.
func NewHandlers(provider campaign.Provider, pipe *pipeline.Pipeline) *Handlers {
	return &Handlers{provider: provider, pipeline: pipe}
}

// Index is a trivial liveness route kept for landing-page smoke tests.
//
//	GET /
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"hello": "world"})
}

// postBody is the expected request envelope: one contact under "data".
type postBody struct {
	Data lead.Submission `json:"data"`
}

// PostContacts accepts a single contact submission for the campaign
// identified by the x-api-key header and runs it through the intake
// pipeline.
//
// Business rejections (missing fields, disposable domain, duplicate)
// return HTTP 200 with a fail payload. Store faults return 503 and
// configuration faults 500, both with an error envelope distinguishable
// from business payloads.
//
//	POST /contacts
func (h *Handlers) PostContacts(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("x-api-key")
	if token == "" {
		respondError(w, http.StatusUnauthorized, "missing x-api-key header")
		return
	}

	var body postBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Data == nil {
		log.Printf("[api] submission without 'data' root rejected")
		respondJSON(w, http.StatusOK, lead.Response{
			Status: lead.StatusFail,
			Data:   map[string]string{"data": lead.ReasonNoDataRoot},
		})
		return
	}

	camp, err := h.provider.Resolve(r.Context(), token)
	if err != nil {
		if errors.Is(err, campaign.ErrNotFound) {
			// The gateway should have rejected unknown keys already;
			// reaching this point is an upstream contract violation.
			log.Printf("[api] campaign token not resolvable: %v", err)
			respondError(w, http.StatusInternalServerError, "campaign token not recognized")
			return
		}
		log.Printf("[api] campaign resolution fault: %v", err)
		respondError(w, http.StatusServiceUnavailable, "campaign store unavailable")
		return
	}
	log.Printf("[api] handling submission for campaign %s", camp.ShortName)

	resp, err := h.pipeline.Process(r.Context(), body.Data, camp, requestContext(r))
	if err != nil {
		log.Printf("[api] pipeline fault: %v", err)
		respondError(w, http.StatusServiceUnavailable, "store unavailable, submission could not be certified")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// requestContext builds the explicit per-request metadata handed to the
// pipeline for archival. The API key header is redacted so credentials
// never reach the audit store.
func requestContext(r *http.Request) lead.RequestContext {
	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}
	delete(headers, "X-Api-Key")

	return lead.RequestContext{
		InvocationID: uuid.NewString(),
		SourceIP:     r.RemoteAddr,
		UserAgent:    r.UserAgent(),
		Method:       r.Method,
		Path:         r.URL.Path,
		Headers:      headers,
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"status": "error", "message": message})
}
