package campaign

import (
	"context"
	"fmt"
	"sync"
)

// MemoryProvider is an in-memory Provider for tests and local runs.
type MemoryProvider struct {
	mu        sync.RWMutex
	byToken   map[string]Campaign
	failWith  error
}

// NewMemoryProvider creates an empty in-memory provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{byToken: make(map[string]Campaign)}
}

// Put registers a campaign under its token.
func (p *MemoryProvider) Put(c Campaign) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byToken[c.Token] = c
}

// FailWith makes every subsequent Resolve return err. Pass nil to clear.
func (p *MemoryProvider) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failWith = err
}

// Resolve looks up the campaign by token.
func (p *MemoryProvider) Resolve(ctx context.Context, token string) (Campaign, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.failWith != nil {
		return Campaign{}, p.failWith
	}
	c, ok := p.byToken[token]
	if !ok {
		return Campaign{}, fmt.Errorf("%w: token %q", ErrNotFound, token)
	}
	return c, nil
}
