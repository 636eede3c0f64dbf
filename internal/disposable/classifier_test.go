package disposable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDisposable(t *testing.T) {
	c := NewClassifier()

	assert.True(t, c.IsDisposable("mailinator.com"))
	assert.True(t, c.IsDisposable("Mailinator.COM"), "matching is case-insensitive")
	assert.True(t, c.IsDisposable("  yopmail.com "), "whitespace is trimmed")
	assert.False(t, c.IsDisposable("example.com"))
	assert.False(t, c.IsDisposable(""))
}

func TestExtraDomains(t *testing.T) {
	c := NewClassifier("Spam.Example ", "", "another.test")

	assert.True(t, c.IsDisposable("spam.example"))
	assert.True(t, c.IsDisposable("another.test"))
	assert.Equal(t, len(defaultDomains)+2, c.Count())
}

func TestDomain(t *testing.T) {
	tests := []struct {
		email  string
		domain string
		ok     bool
	}{
		{"john@example.com", "example.com", true},
		{"john@Example.COM", "Example.COM", true}, // caller decides casing
		{"no-at-sign", "", false},
		{"two@at@signs.com", "", false},
		{"@nodomain", "", false},
		{"nolocal@", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		domain, ok := Domain(tt.email)
		assert.Equal(t, tt.ok, ok, "email %q", tt.email)
		assert.Equal(t, tt.domain, domain, "email %q", tt.email)
	}
}
