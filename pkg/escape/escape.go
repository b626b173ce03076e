package escape

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Escaper converts untrusted strings into markup-safe text. Attr is used for
// attribute names and values, HTML for text nodes.
type Escaper interface {
	Attr(value string) string
	HTML(value string) string
}

// Default escapes &, <, >, " and ' in both contexts.
var Default Escaper = htmlEscaper{}

type htmlEscaper struct{}

func (htmlEscaper) Attr(value string) string { return html.EscapeString(value) }

func (htmlEscaper) HTML(value string) string { return html.EscapeString(value) }

// Sanitizing keeps attribute escaping strict but lets text nodes carry the
// markup a bluemonday policy allows, e.g. emphasis inside a label.
type Sanitizing struct {
	policy *bluemonday.Policy
}

// NewSanitizing wraps policy. A nil policy falls back to InlinePolicy.
func NewSanitizing(policy *bluemonday.Policy) *Sanitizing {
	if policy == nil {
		policy = InlinePolicy()
	}
	return &Sanitizing{policy: policy}
}

func (s *Sanitizing) Attr(value string) string {
	return html.EscapeString(value)
}

func (s *Sanitizing) HTML(value string) string {
	if strings.TrimSpace(value) == "" {
		return html.EscapeString(value)
	}
	return s.policy.Sanitize(value)
}

var (
	inlinePolicyOnce sync.Once
	inlinePolicy     *bluemonday.Policy
)

// InlinePolicy returns the shared policy used for label text. It allows a
// handful of phrasing elements and strips everything else.
func InlinePolicy() *bluemonday.Policy {
	inlinePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("strong", "em", "b", "i", "code", "small")
		policy.AllowAttrs("title").OnElements("abbr")
		policy.AllowAttrs("class").OnElements("span")
		inlinePolicy = policy
	})
	return inlinePolicy
}
