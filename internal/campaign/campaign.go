// Package campaign resolves API tokens to campaign intake rules.
package campaign

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no campaign exists for a token. The
	// upstream auth layer is expected to reject unknown tokens before the
	// pipeline runs; seeing this error here is a configuration fault.
	ErrNotFound = errors.New("campaign not found")

	// ErrUnavailable is returned when the rule store cannot be reached.
	ErrUnavailable = errors.New("campaign store unavailable")
)

// Campaign is the per-request snapshot of a campaign's intake contract.
// RequiredFields is fixed for the lifetime of the record and resolved
// once per invocation.
type Campaign struct {
	Token         string   `json:"token" dynamodbav:"CampaignToken"`
	ShortName     string   `json:"short_name" dynamodbav:"CampaignShortName"`
	DecimalCode   int64    `json:"decimal_code" dynamodbav:"CampaignDecimal"`
	RequiredFields []string `json:"required_fields" dynamodbav:"RequiredFields,stringset"`
}

// RequiredSet returns the required fields as a set for membership tests.
func (c Campaign) RequiredSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.RequiredFields))
	for _, f := range c.RequiredFields {
		set[f] = struct{}{}
	}
	return set
}

// Provider resolves a campaign token to its Campaign record.
type Provider interface {
	Resolve(ctx context.Context, token string) (Campaign, error)
}
