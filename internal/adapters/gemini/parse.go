package gemini

import (
	"encoding/json"
	"strconv"
	"strings"
)

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, p := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[p]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// candidateText joins the text parts of the first candidate.
func candidateText(resp map[string]any) string {
	cands, ok := resp["candidates"].([]any)
	if !ok || len(cands) == 0 {
		return ""
	}
	first, ok := cands[0].(map[string]any)
	if !ok {
		return ""
	}
	parts, ok := lookupAny(first, "content.parts").([]any)
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, p := range parts {
		obj, ok := p.(map[string]any)
		if !ok {
			continue
		}
		if t, ok := obj["text"].(string); ok {
			b.WriteString(t)
		}
	}
	return strings.TrimSpace(b.String())
}

// stripFence removes a surrounding ``` or ```json fence.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// parseIDs reads a JSON array of ids. Numbers are accepted alongside strings;
// anything else in the array is skipped. Duplicates keep their first position.
func parseIDs(text string) ([]string, error) {
	var raw []any
	if err := json.Unmarshal([]byte(stripFence(text)), &raw); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, it := range raw {
		var id string
		switch v := it.(type) {
		case string:
			id = strings.TrimSpace(v)
		case float64:
			id = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			continue
		}
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
