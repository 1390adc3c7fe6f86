package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no links unchanged",
			in:   "plain text with nothing to strip, not even example.com",
			want: "plain text with nothing to strip, not even example.com",
		},
		{
			name: "scheme url with www and path",
			in:   "Visit http://www.example.com/path for details",
			want: "Visit Link removed: example.com for details",
		},
		{
			name: "https with query and fragment",
			in:   "see https://news.example.net/story?id=1#top",
			want: "see Link removed: news.example.net",
		},
		{
			name: "bare www form",
			in:   "docs at www.example.org today",
			want: "docs at Link removed: example.org today",
		},
		{
			name: "numbered www prefix",
			in:   "mirror: www2.example.org/downloads",
			want: "mirror: Link removed: example.org",
		},
		{
			name: "multiple links",
			in:   "http://a.example.com/x and www.b.example.com",
			want: "Link removed: a.example.com and Link removed: b.example.com",
		},
		{
			name: "ftp scheme",
			in:   "ftp://files.example.com/pub/readme",
			want: "Link removed: files.example.com",
		},
		{
			name: "link at start and end",
			in:   "www.first.example middle http://last.example",
			want: "Link removed: first.example middle Link removed: last.example",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

// Malformed links still produce a notice with whatever host fragment can
// be salvaged; normalization never fails.
func TestCleanMalformedLink(t *testing.T) {
	got := Clean("broken http://%zz/path link")
	assert.Equal(t, "broken Link removed: %zz link", got)
}

// Output of a clean pass contains no link-shaped text, so a second pass
// is a no-op.
func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"Visit http://www.example.com/path for details",
		"docs at www.example.org today",
		"plain text",
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once))
	}
}
