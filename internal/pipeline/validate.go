package pipeline

import (
	"sort"
	"strings"

	"github.com/malimedia/campaign-entries/internal/campaign"
	"github.com/malimedia/campaign-entries/internal/lead"
)

// missingFields computes the set difference between the campaign's
// required fields and the submission's keys. The returned order is
// sorted for stable logs; callers must not rely on it.
func missingFields(sub lead.Submission, camp campaign.Campaign) []string {
	var missing []string
	for f := range camp.RequiredSet() {
		if _, ok := sub[f]; !ok {
			missing = append(missing, f)
		}
	}
	sort.Strings(missing)
	return missing
}

// Canonicalize returns a copy of the submission with the email field
// lowercased and trimmed. All other fields pass through untouched; the
// caller's map is never mutated. Idempotent.
func Canonicalize(sub lead.Submission) lead.Submission {
	out := sub.Clone()
	if email, ok := out["email"]; ok {
		out["email"] = strings.ToLower(strings.TrimSpace(email))
	}
	return out
}
