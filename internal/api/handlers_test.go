package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malimedia/campaign-entries/internal/archive"
	"github.com/malimedia/campaign-entries/internal/campaign"
	"github.com/malimedia/campaign-entries/internal/contacts"
	"github.com/malimedia/campaign-entries/internal/disposable"
	"github.com/malimedia/campaign-entries/internal/lead"
	"github.com/malimedia/campaign-entries/internal/pipeline"
)

func setupTestServer(t *testing.T) (http.Handler, *contacts.MemoryStore, *archive.Capture) {
	t.Helper()

	provider := campaign.NewMemoryProvider()
	provider.Put(campaign.Campaign{
		Token:          "tok-summer",
		ShortName:      "summer2017",
		DecimalCode:    42,
		RequiredFields: []string{"email", "firstname"},
	})

	store := contacts.NewMemoryStore()
	capture := archive.NewCapture()
	pipe := pipeline.New(store, capture, disposable.NewClassifier())

	handlers := NewHandlers(provider, pipe)
	return SetupRoutes(handlers, nil), store, capture
}

func postContacts(t *testing.T, handler http.Handler, apiKey string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contacts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) lead.Response {
	t.Helper()
	var resp lead.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestIndex(t *testing.T) {
	handler, _, _ := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hello":"world"}`, rec.Body.String())
}

func TestPostContacts_Accepted(t *testing.T) {
	handler, store, capture := setupTestServer(t)

	rec := postContacts(t, handler, "tok-summer",
		`{"data":{"firstname":"John","email":"John@Example.com "}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "accepted", resp.Data["lead"])
	assert.Equal(t, "john@example.com", resp.Data["email"])

	assert.Equal(t, 1, store.RecordCalls())
	assert.Equal(t, 1, capture.Count())

	// The archival record carries request metadata but never the API key.
	rec0 := capture.Records()[0]
	assert.NotEmpty(t, rec0.Meta.Context.InvocationID)
	assert.NotContains(t, rec0.Meta.Headers, "X-Api-Key")
}

func TestPostContacts_Duplicate(t *testing.T) {
	handler, _, capture := setupTestServer(t)

	postContacts(t, handler, "tok-summer",
		`{"data":{"firstname":"John","email":"john@example.com"}}`)
	rec := postContacts(t, handler, "tok-summer",
		`{"data":{"firstname":"Johnny","email":"JOHN@example.com"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, "Duplicate contact", resp.Data["reason"])
	assert.Equal(t, 2, capture.Count())
}

func TestPostContacts_Disposable(t *testing.T) {
	handler, store, capture := setupTestServer(t)

	rec := postContacts(t, handler, "tok-summer",
		`{"data":{"firstname":"John","email":"john@mailinator.com"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, "rejected", resp.Data["lead"])
	assert.Equal(t, "Disposable email address detected: mailinator.com", resp.Data["reason"])

	assert.Equal(t, 0, store.RecordCalls())
	assert.Equal(t, 1, capture.Count())
}

func TestPostContacts_MissingFields(t *testing.T) {
	handler, _, capture := setupTestServer(t)

	rec := postContacts(t, handler, "tok-summer",
		`{"data":{"email":"john@example.com"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, "Missing field(s)", resp.Data["reason"])
	assert.Equal(t, "This field is required", resp.Data["firstname"])
	assert.Equal(t, 0, capture.Count())
}

func TestPostContacts_NoDataRoot(t *testing.T) {
	handler, _, _ := setupTestServer(t)

	for _, body := range []string{`{}`, `{"contact":{"email":"a@b.com"}}`, `not json`} {
		rec := postContacts(t, handler, "tok-summer", body)

		assert.Equal(t, http.StatusOK, rec.Code, "body %q", body)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "fail", resp.Status, "body %q", body)
		assert.Equal(t, "Invalid JSON structure: no root element 'data' provided.",
			resp.Data["data"], "body %q", body)
	}
}

func TestPostContacts_MissingAPIKey(t *testing.T) {
	handler, _, _ := setupTestServer(t)

	rec := postContacts(t, handler, "",
		`{"data":{"firstname":"John","email":"john@example.com"}}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPostContacts_UnknownToken(t *testing.T) {
	handler, _, capture := setupTestServer(t)

	rec := postContacts(t, handler, "tok-nope",
		`{"data":{"firstname":"John","email":"john@example.com"}}`)

	// An unresolvable token past the gateway is a configuration fault,
	// not a business rejection.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 0, capture.Count())
}

func TestPostContacts_StoreFault(t *testing.T) {
	handler, store, _ := setupTestServer(t)
	store.FailLookupWith(contacts.ErrUnavailable)

	rec := postContacts(t, handler, "tok-summer",
		`{"data":{"firstname":"John","email":"john@example.com"}}`)

	// Distinguishable from business fail payloads: 503 + error envelope.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
}

func TestHealthLiveness(t *testing.T) {
	provider := campaign.NewMemoryProvider()
	pipe := pipeline.New(contacts.NewMemoryStore(), archive.NewCapture(), disposable.NewClassifier())
	handler := SetupRoutes(NewHandlers(provider, pipe), NewHealthChecker(nil, "", nil, "", nil))

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
