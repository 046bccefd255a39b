package rendering

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	linkPolicyOnce sync.Once
	linkPolicy     *bluemonday.Policy
)

// SafeURL returns raw when it is acceptable as a link target in the HTML
// resume, or "" otherwise. Only http, https and mailto links and relative
// references pass; script URLs are dropped.
func SafeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	probe := `<a href="` + html.EscapeString(raw) + `">x</a>`
	if !strings.Contains(linkSanitizer().Sanitize(probe), "href=") {
		return ""
	}
	return raw
}

func linkSanitizer() *bluemonday.Policy {
	linkPolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowStandardURLs()
		p.AllowRelativeURLs(true)
		p.AllowAttrs("href").OnElements("a")
		linkPolicy = p
	})
	return linkPolicy
}
