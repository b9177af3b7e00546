package render

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Span is a run of text in one colour.
type Span struct {
	Text  string
	Color colorful.Color
}

const (
	openPrefix = "<color="
	closeTag   = "</color>"
)

// ParseMarkup splits "<color=#rrggbb>text</color>..." into spans. Text
// outside any tag is returned with the zero colour (black).
func ParseMarkup(s string) ([]Span, error) {
	var spans []Span
	for s != "" {
		start := strings.Index(s, openPrefix)
		if start < 0 {
			spans = append(spans, Span{Text: s})
			break
		}
		if start > 0 {
			spans = append(spans, Span{Text: s[:start]})
		}
		s = s[start+len(openPrefix):]

		end := strings.IndexByte(s, '>')
		if end < 0 {
			return nil, fmt.Errorf("parse markup: unterminated colour tag")
		}
		c, err := colorful.Hex(s[:end])
		if err != nil {
			return nil, fmt.Errorf("parse markup: %w", err)
		}
		s = s[end+1:]

		stop := strings.Index(s, closeTag)
		if stop < 0 {
			return nil, fmt.Errorf("parse markup: missing %s", closeTag)
		}
		spans = append(spans, Span{Text: s[:stop], Color: c})
		s = s[stop+len(closeTag):]
	}
	return spans, nil
}

// PlainText drops the tags.
func PlainText(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}
