package markup

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold prefix", "<b>1.</b> Here we have", "1. Here we have"},
		{"indented literal", "line one\n                  line two", "line one line two"},
		{"entities", "sun &amp; lamp", "sun & lamp"},
		{"line break", "a<br>b", "a b"},
		{"no markup", "The End", "The End"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}

func TestSummarizer(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "5. The End", NewSummarizer(80).Summarize("<b>5.</b> The End"))
	})

	t.Run("long text truncated with ellipsis", func(t *testing.T) {
		got := NewSummarizer(10).Summarize("<b>4.</b> In this scenario where there is a solid object")
		assert.Equal(t, 10, utf8.RuneCountInString(got))
		assert.Equal(t, "4. In thi…", got)
	})

	t.Run("trailing space before ellipsis is trimmed", func(t *testing.T) {
		assert.Equal(t, "ab…", NewSummarizer(4).Summarize("ab cd ef"))
	})

	t.Run("zero disables truncation", func(t *testing.T) {
		long := "one two three four five six seven eight nine ten"
		assert.Equal(t, long, NewSummarizer(0).Summarize(long))
	})
}
