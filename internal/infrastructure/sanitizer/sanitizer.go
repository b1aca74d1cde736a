package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
)

// Sanitizer strips all markup from user supplied text.
type Sanitizer struct {
	policy *bluemonday.Policy
}

var _ contract.ISanitizer = (*Sanitizer)(nil)

func New() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize removes tags and trims the result. Entities escaped by the policy
// are decoded again so "Q&A" is stored as typed.
func (s *Sanitizer) Sanitize(in string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(in)))
}
