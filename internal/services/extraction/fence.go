// fence.go strips markdown code fences from model completions.
//
// Models sometimes wrap structured output in a ```json fence despite being
// told not to. Kept as a standalone function because inline string slicing
// here is exactly where an off-by-one would silently corrupt valid JSON.
package extraction

import "strings"

// stripFences removes a leading ```json (or bare ```) fence and a trailing
// ``` fence from a completion, if present. Input and output are trimmed.
// Unfenced input passes through unchanged, so the function is idempotent.
func stripFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}

	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}

	return strings.TrimSpace(s)
}
