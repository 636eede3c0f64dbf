// Package disposable classifies email domains against a static list of
// known disposable-address providers.
package disposable

import "strings"

// Classifier answers set-membership queries over lowercased domains.
// The default list is baked in; deployments can append extra domains at
// construction time. The set is built once and read-only afterwards, so
// lookups need no synchronization.
type Classifier struct {
	domains map[string]struct{}
}

// NewClassifier builds a classifier from the default list plus any extra
// domains. Extra entries are lowercased and trimmed; blanks are skipped.
func NewClassifier(extra ...string) *Classifier {
	set := make(map[string]struct{}, len(defaultDomains)+len(extra))
	for _, d := range defaultDomains {
		set[d] = struct{}{}
	}
	for _, d := range extra {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		set[d] = struct{}{}
	}
	return &Classifier{domains: set}
}

// IsDisposable reports whether the domain belongs to a known
// disposable-email provider. Matching is case-insensitive.
func (c *Classifier) IsDisposable(domain string) bool {
	_, ok := c.domains[strings.ToLower(strings.TrimSpace(domain))]
	return ok
}

// Count returns the number of domains in the set.
func (c *Classifier) Count() int {
	return len(c.domains)
}

// Domain extracts the domain portion of an email address. It is
// deliberately strict: exactly one "@" with non-empty local part and
// domain, otherwise ok is false and the address is treated as malformed.
func Domain(email string) (domain string, ok bool) {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return "", false
	}
	if strings.IndexByte(email[at+1:], '@') >= 0 {
		return "", false
	}
	return email[at+1:], true
}
