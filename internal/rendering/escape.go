package rendering

import "strings"

// latexReplacer escapes the characters LaTeX treats specially:
// \ { } $ & % # ^ _ ~
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"{", `\{`,
	"}", `\}`,
	"$", `\$`,
	"&", `\&`,
	"%", `\%`,
	"#", `\#`,
	"^", `\textasciicircum{}`,
	"_", `\_`,
	"~", `\textasciitilde{}`,
)

// urlReplacer escapes link targets for \href, which takes most characters
// verbatim. Backslashes and braces are dropped.
var urlReplacer = strings.NewReplacer(`\`, "", "%", `\%`, "#", `\#`, "{", "", "}", "")

// EscapeLaTeX escapes text for use in a LaTeX document body.
func EscapeLaTeX(text string) string {
	return latexReplacer.Replace(text)
}

// EscapeLaTeXURL escapes a link target for use inside \href.
func EscapeLaTeXURL(url string) string {
	return urlReplacer.Replace(url)
}
