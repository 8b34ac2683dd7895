package meta

import "strings"

// DefaultIndent is the leading-space count used when callers have no
// preference of their own.
const DefaultIndent = 4

// Cleanup trims leading and trailing whitespace and collapses every interior
// run of whitespace, newlines included, into a single space. It performs no
// HTML escaping. Idempotent.
func Cleanup(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Render emits one head tag per present field, ascending by field name, each
// line prefixed with indent spaces and joined with newlines. An empty record
// renders to the empty string. The output is raw markup; the embedding layer
// must splice it without re-escaping.
func Render(rec Record, indent int) string {
	names := rec.Fields()
	if len(names) == 0 {
		return ""
	}
	if indent < 0 {
		indent = 0
	}
	pad := strings.Repeat(" ", indent)
	lines := make([]string, 0, len(names))
	for _, name := range names {
		value, _ := rec.Get(name)
		lines = append(lines, pad+tagLine(name, Cleanup(value)))
	}
	return strings.Join(lines, "\n")
}

// tagLine formats a single head element. og_site_name keeps its underscore
// after the family prefix is stripped: property="og:site_name".
func tagLine(name, value string) string {
	switch name {
	case FieldTitle:
		return "<title>" + value + "</title>"
	case FieldDescription:
		return `<meta name="description" content="` + value + `" />`
	case FieldCanonical:
		return `<link rel="canonical" href="` + value + `" />`
	}
	switch {
	case strings.HasPrefix(name, "og_"):
		return `<meta property="og:` + strings.TrimPrefix(name, "og_") + `" content="` + value + `" />`
	case strings.HasPrefix(name, "twitter_"):
		return `<meta property="twitter:` + strings.TrimPrefix(name, "twitter_") + `" content="` + value + `" />`
	}
	// Build rejects unknown names, so this is unreachable for valid records.
	return ""
}
