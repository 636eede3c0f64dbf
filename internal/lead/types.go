// Package lead holds the shared data types that flow through the contact
// intake pipeline: the caller's submission, the computed verdict, the
// response envelope, and the archival record written for every processed
// submission.
package lead

// Submission is the field map a landing page posts for a single contact.
// Field names are campaign-defined; the pipeline only interprets "email".
type Submission map[string]string

// Clone returns a shallow copy. The canonicalizer works on a copy so the
// caller's map is never mutated.
func (s Submission) Clone() Submission {
	out := make(Submission, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Verdict classifies the outcome of a submission.
type Verdict string

const (
	VerdictAccepted Verdict = "accepted"
	VerdictRejected Verdict = "rejected"
)

// Response is the payload returned to the caller for every business
// outcome (accepted, duplicate, disposable, missing fields).
type Response struct {
	Status string            `json:"status"` // "success" or "fail"
	Data   map[string]string `json:"data"`
}

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// Reason strings surfaced in fail responses.
const (
	ReasonMissingFields = "Missing field(s)"
	ReasonRequiredField = "This field is required"
	ReasonDuplicate     = "Duplicate contact"
	ReasonInvalidEmail  = "Invalid email address"
	ReasonNoDataRoot    = "Invalid JSON structure: no root element 'data' provided."
)

// Accepted builds the success payload for a newly recorded contact.
func Accepted(email string) Response {
	return Response{
		Status: StatusSuccess,
		Data: map[string]string{
			"lead":  string(VerdictAccepted),
			"email": email,
		},
	}
}

// Rejected builds the fail payload for a rejected lead.
func Rejected(reason, email string) Response {
	return Response{
		Status: StatusFail,
		Data: map[string]string{
			"lead":   string(VerdictRejected),
			"reason": reason,
			"email":  email,
		},
	}
}

// MissingFields builds the fail payload for a structural validation
// failure: one entry per missing field plus the overall reason.
func MissingFields(missing []string) Response {
	data := make(map[string]string, len(missing)+1)
	data["reason"] = ReasonMissingFields
	for _, f := range missing {
		data[f] = ReasonRequiredField
	}
	return Response{Status: StatusFail, Data: data}
}

// RequestContext carries the per-request metadata the archival writer
// records. It is threaded explicitly into the pipeline instead of being
// read from ambient request state.
type RequestContext struct {
	InvocationID string            `json:"invocation_id"`
	SourceIP     string            `json:"source_ip,omitempty"`
	UserAgent    string            `json:"user_agent,omitempty"`
	Method       string            `json:"method,omitempty"`
	Path         string            `json:"path,omitempty"`
	Headers      map[string]string `json:"-"`
}

// CampaignIdentity is the campaign portion of an archival record. The
// attribute names match the stored campaign item.
type CampaignIdentity struct {
	ShortName   string `json:"CampaignShortName"`
	DecimalCode int64  `json:"CampaignDecimal"`
}

// ArchiveMeta is the metadata portion of an archival record.
type ArchiveMeta struct {
	TimeStamp string            `json:"time_stamp"`
	Context   RequestContext    `json:"context"`
	Headers   map[string]string `json:"headers"`
}

// ArchiveRecord is the immutable, full-fidelity audit copy of one
// processed submission: original data, computed verdict payload, campaign
// identity, and request metadata.
type ArchiveRecord struct {
	Data     Submission       `json:"data"`
	Lead     Response         `json:"lead"`
	Campaign CampaignIdentity `json:"campaign"`
	Meta     ArchiveMeta      `json:"meta"`
}
