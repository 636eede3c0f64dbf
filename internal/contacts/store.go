// Package contacts provides the dedup index over canonical emails: a
// point lookup that signals duplicate vs. new, and a write that records
// the first-accepted timestamp.
package contacts

import (
	"context"
	"errors"
)

// ErrUnavailable distinguishes store faults (timeouts, throttling) from
// a clean not-found. Callers must never treat a wrapped ErrUnavailable
// as "no duplicate".
var ErrUnavailable = errors.New("contact store unavailable")

// LookupResult is the outcome of a duplicate lookup. Found carries the
// stored first-seen timestamp; absence is a normal result, not an error.
type LookupResult struct {
	Found     bool
	FirstSeen string
}

// Store is the contact dedup index. Keys are canonical emails
// (lowercased, trimmed); values are first-accepted timestamps. Records
// are created once and never updated or deleted by the pipeline.
type Store interface {
	// Lookup performs a point read by canonical email.
	Lookup(ctx context.Context, email string) (LookupResult, error)

	// Record writes email → timestamp. Called only after Lookup
	// reported not-found for the same invocation.
	Record(ctx context.Context, email, timestamp string) error
}
