// Package directive enumerates snippet placeholder tokens embedded in body
// text, such as {% gist 58951e8986cca7e563af %}. Tokens reference externally
// hosted code snippets by an opaque identifier; resolving them is the
// renderer's job, never the loader's. Scanning exists only so tooling can
// report what an external renderer will have to fetch.
package directive

import (
	"regexp"
	"strings"
)

// Directive is one placeholder token found in body text.
type Directive struct {
	Name   string   // directive name, e.g. "gist"
	Args   []string // whitespace-separated arguments; the snippet identifier comes first
	Raw    string   // the token exactly as it appears in the body
	Offset int      // byte offset of the token within the body
}

// ID returns the opaque snippet identifier (the first argument), or the empty
// string for a bare token.
func (d Directive) ID() string {
	if len(d.Args) == 0 {
		return ""
	}
	return d.Args[0]
}

var tokenPattern = regexp.MustCompile(`\{%\s*([a-zA-Z_][a-zA-Z0-9_]*)([^%]*)%\}`)

// Scan returns every placeholder token in body, in order of appearance.
// The body itself is treated as opaque text and is never modified.
func Scan(body string) []Directive {
	matches := tokenPattern.FindAllStringSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return nil
	}

	out := make([]Directive, 0, len(matches))
	for _, m := range matches {
		d := Directive{
			Name:   body[m[2]:m[3]],
			Raw:    body[m[0]:m[1]],
			Offset: m[0],
		}
		if args := strings.Fields(body[m[4]:m[5]]); len(args) > 0 {
			d.Args = args
		}
		out = append(out, d)
	}
	return out
}
