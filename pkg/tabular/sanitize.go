package tabular

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans cell markup before it reaches the public page.
// *bluemonday.Policy satisfies it.
type Sanitizer interface {
	Sanitize(string) string
}

// PassThrough emits cell values unchanged.
type PassThrough struct{}

// Sanitize returns s as is.
func (PassThrough) Sanitize(s string) string { return s }

var (
	cellPolicyOnce sync.Once
	cellPolicy     *bluemonday.Policy
)

// DefaultSanitizer keeps inline formatting editors commonly type into cells
// (emphasis, links, line breaks) and strips everything else.
func DefaultSanitizer() *bluemonday.Policy {
	cellPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "u", "s", "small", "sub", "sup", "br", "code", "span", "abbr")
		policy.AllowAttrs("title").OnElements("abbr", "span")
		policy.AllowStandardURLs()
		policy.AllowAttrs("href").OnElements("a")
		policy.RequireNoFollowOnLinks(true)
		cellPolicy = policy
	})
	return cellPolicy
}
