package rendering

import (
	"testing"
	"testing/fstest"

	"github.com/flosch/pongo2/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"https", "https://github.com/janedoe", "https://github.com/janedoe"},
		{"mailto", "mailto:jane@example.com", "mailto:jane@example.com"},
		{"no scheme", "linkedin.com/in/jane", "linkedin.com/in/jane"},
		{"query", "https://a.b/?x=1&y=2", "https://a.b/?x=1&y=2"},
		{"trimmed", "  https://a.b  ", "https://a.b"},
		{"script", "javascript:alert(1)", ""},
		{"data", "data:text/html;base64,PHNjcmlwdD4=", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeURL(tt.in))
		})
	}
}

func TestEngine_SafeURLFilter(t *testing.T) {
	e := NewEngine("test", fstest.MapFS{
		"a.tpl": {Data: []byte(`<a href="{{ u|safeurl }}">x</a>`)},
	})

	out, err := e.Execute("a.tpl", pongo2.Context{"u": "javascript:alert(1)"})
	require.NoError(t, err)
	assert.Equal(t, `<a href="">x</a>`, out)

	out, err = e.Execute("a.tpl", pongo2.Context{"u": "https://a.b/?x=1&y=2"})
	require.NoError(t, err)
	assert.Equal(t, `<a href="https://a.b/?x=1&amp;y=2">x</a>`, out)
}
