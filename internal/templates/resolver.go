package templates

import (
	"regexp"
	"strings"
)

// Token identifiers recognized across every channel. The set is closed:
// templates authored in the dashboard only ever carry these four.
const (
	TokenName     = "name"
	TokenUsername = "username"
	TokenBrand    = "brand"
	TokenProduct  = "product"
)

// Matches {{identifier}} with exact delimiters and no internal whitespace.
// Capture 1 = identifier.
var tokenPattern = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)}}`)

// Resolve substitutes placeholder tokens in template from context, left to
// right in a single pass. Tokens whose identifier is missing from context are
// left verbatim; extra context keys are ignored. Substituted values are never
// re-scanned. Resolve never fails.
func Resolve(template string, context map[string]string) string {
	if template == "" {
		return ""
	}

	matches := tokenPattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))
	last := 0
	for _, m := range matches {
		fullStart, fullEnd := m[0], m[1]
		identifier := template[m[2]:m[3]]

		if fullStart > last {
			b.WriteString(template[last:fullStart])
		}
		if value, ok := context[identifier]; ok {
			b.WriteString(value)
		} else {
			// Unresolved token stays in the output untouched.
			b.WriteString(template[fullStart:fullEnd])
		}
		last = fullEnd
	}
	if last < len(template) {
		b.WriteString(template[last:])
	}
	return b.String()
}

// ContainsToken reports whether s holds at least one placeholder token.
func ContainsToken(s string) bool {
	return tokenPattern.MatchString(s)
}
