package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World!! 2024", "hello-world-2024"},
		{"Simple Title", "simple-title"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Multiple   spaces   here", "multiple-spaces-here"},
		{"Already-hyphenated - title", "already-hyphenated-title"},
		{"UPPER case", "upper-case"},
		{"Symbols @#$%^&* stripped", "symbols-stripped"},
		{"émigré café", "migr-caf"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "title %q", tt.title)
	}
}

func TestSlugifyNoBadHyphens(t *testing.T) {
	for _, title := range []string{"a - b", "--x--", "a  !  b", "- start", "end -"} {
		slug := Slugify(title)
		assert.NotContains(t, slug, "--", "title %q", title)
		assert.False(t, len(slug) > 0 && (slug[0] == '-' || slug[len(slug)-1] == '-'),
			"title %q produced %q", title, slug)
	}
}
