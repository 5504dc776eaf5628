package util

import "strings"

// StripMarkup neutralizes HTML markup in free-text input before storage.
// Tag contents are dropped, stray angle brackets are escaped, and surrounding
// whitespace is trimmed.
func StripMarkup(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>':
			if depth > 0 {
				depth--
			} else {
				out.WriteString("&gt;")
			}
		case depth == 0:
			out.WriteRune(r)
		}
	}

	// An unclosed tag swallows the rest of the input; that is acceptable for
	// hostile markup.
	return strings.TrimSpace(out.String())
}
