// Package markup turns slide descriptions, which may carry inline HTML, into plain text.
package markup

import (
	"strings"

	"golang.org/x/net/html"

	"reflectionlesson/internal/domain"
)

// DefaultMaxRunes is the summary length used when none is configured.
const DefaultMaxRunes = 80

const ellipsis = "…"

type summarizer struct {
	maxRunes int
}

// NewSummarizer returns a SlideSummarizer that strips markup, collapses whitespace and
// truncates to maxRunes runes (ellipsis included). maxRunes <= 0 disables truncation.
func NewSummarizer(maxRunes int) domain.SlideSummarizer {
	return &summarizer{maxRunes: maxRunes}
}

func (s *summarizer) Summarize(description string) string {
	return truncate(PlainText(description), s.maxRunes)
}

// PlainText returns the text content of an HTML fragment with entities decoded
// and runs of whitespace collapsed to single spaces.
func PlainText(fragment string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			// <br> and <p> separate words.
			if name, _ := z.TagName(); string(name) == "br" || string(name) == "p" {
				b.WriteByte(' ')
			}
		}
	}
}

func truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	cut := maxRunes - len([]rune(ellipsis))
	if cut < 0 {
		cut = 0
	}
	return strings.TrimRight(string(runes[:cut]), " ") + ellipsis
}
