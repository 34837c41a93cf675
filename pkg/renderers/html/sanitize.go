package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// sanitizeLabel strips everything but harmless inline markup from a display
// label. Labels routinely come from catalog files or OpenAPI documents, which
// are untrusted input as far as markup goes.
func sanitizeLabel(raw string) string {
	return strings.TrimSpace(labelSanitizer().Sanitize(raw))
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "i", "em", "strong", "code", "abbr", "span", "small", "sub", "sup")
		policy.AllowAttrs("title").OnElements("abbr")
		policy.AllowAttrs("class").OnElements("span")
		labelPolicy = policy
	})
	return labelPolicy
}
