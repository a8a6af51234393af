package assistant

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// answerPolicy is the tag allowlist the instruction asks the model to stick to.
func answerPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "em", "i", "strong", "b", "ol", "ul", "li", "br",
		"h1", "h2", "h3", "h4", "h5", "h6")
	return p
}

// Sanitizer strips anything outside the answer allowlist. Safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: answerPolicy()}
}

func (s *Sanitizer) Sanitize(answer string) string {
	return strings.TrimSpace(s.policy.Sanitize(answer))
}

// PlainText flattens a sanitized answer for terminal output, decoding entities.
func PlainText(answer string) string {
	text, err := markupToText(answer)
	if err != nil {
		return answer
	}
	return text
}
