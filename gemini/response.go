package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ResponseText extracts a displayable string from a model reply. The
// attempts are ordered, first success wins: the first text part of the
// first candidate, then a JSON stringification of the whole reply as a
// last resort.
func ResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	if text := candidateText(resp); text != "" {
		return text
	}

	if data, err := json.Marshal(resp); err == nil {
		return string(data)
	}
	return fmt.Sprint(resp)
}

// ResponseStructured parses the reply's candidate text as JSON. It
// returns (nil, false) when there is no candidate text or the text is
// not JSON; callers degrade to ResponseText in that case.
func ResponseStructured(resp *genai.GenerateContentResponse) (any, bool) {
	text := candidateText(resp)
	if text == "" {
		return nil, false
	}

	var v any
	if err := json.Unmarshal([]byte(extractJSON(text)), &v); err != nil {
		return nil, false
	}
	return v, true
}

// candidateText returns the first non-empty text part of the first
// candidate, or "".
func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}
	for _, part := range candidate.Content.Parts {
		if part != nil && part.Text != "" {
			return part.Text
		}
	}
	return ""
}

// extractJSON strips markdown code fences from a reply and trims it to
// the outermost JSON object or array. Models asked for JSON without a
// response schema often wrap it in ```json fences or prose.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		start := 3
		if idx := strings.Index(content[start:], "\n"); idx != -1 {
			start += idx + 1
		}
		if end := strings.Index(content[start:], "```"); end != -1 {
			content = content[start : start+end]
		} else {
			content = content[start:]
		}
		content = strings.TrimSpace(content)
	}

	objStart := strings.Index(content, "{")
	arrStart := strings.Index(content, "[")
	switch {
	case arrStart != -1 && (objStart == -1 || arrStart < objStart):
		if end := strings.LastIndex(content, "]"); end > arrStart {
			content = content[arrStart : end+1]
		}
	case objStart != -1:
		if end := strings.LastIndex(content, "}"); end > objStart {
			content = content[objStart : end+1]
		}
	}

	return strings.TrimSpace(content)
}
