package archive

import (
	"context"
	"sync"

	"github.com/malimedia/campaign-entries/internal/lead"
)

// Capture is an in-memory Writer that keeps every archived record, for
// tests and local runs.
type Capture struct {
	mu      sync.Mutex
	records []lead.ArchiveRecord
	failWith error
}

// NewCapture creates an empty capture writer.
func NewCapture() *Capture {
	return &Capture{}
}

// FailWith makes every subsequent Archive return err. Pass nil to clear.
func (c *Capture) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failWith = err
}

// Archive appends the record.
func (c *Capture) Archive(ctx context.Context, rec lead.ArchiveRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failWith != nil {
		return c.failWith
	}
	c.records = append(c.records, rec)
	return nil
}

// Records returns a copy of everything archived so far.
func (c *Capture) Records() []lead.ArchiveRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]lead.ArchiveRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Count returns the number of archived records.
func (c *Capture) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}
