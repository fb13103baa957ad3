package plan

import (
	"encoding/json"
	"regexp"
)

// Models asked for strict JSON still wrap it in markdown fences or leave
// trailing commas often enough to matter. These patterns recover the object.
var (
	// fencedObjectPattern matches JSON inside markdown code blocks: ```json { ... } ```
	fencedObjectPattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	// bareObjectPattern matches any JSON object (greedy fallback).
	bareObjectPattern = regexp.MustCompile(`(?s)\{[\s\S]*\}`)
	// trailingCommaPattern matches trailing commas before ] or }.
	trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
)

// DecodeLLMJSON parses a completion's content into a generic map for the
// normalizers. Absent content, unparseable content, or a non-object document
// all decode to an empty map; the normalizers supply the rest.
func DecodeLLMJSON(content string) map[string]any {
	raw := extractObject(content)
	if raw == "" {
		return map[string]any{}
	}
	raw = trailingCommaPattern.ReplaceAllString(raw, "$1")

	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil || decoded == nil {
		return map[string]any{}
	}
	return decoded
}

func extractObject(content string) string {
	if matches := fencedObjectPattern.FindStringSubmatch(content); len(matches) > 1 {
		return matches[1]
	}
	return bareObjectPattern.FindString(content)
}
