package krishna

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Extracted is the normalized answer recovered from a raw Gemini reply.
type Extracted struct {
	Response  string `json:"response"`
	Reference string `json:"reference"`
}

// NoReference marks an answer without a chapter.verse citation.
const NoReference = "—"

var (
	fenceRe    = regexp.MustCompile("(?i)```json|```|``")
	responseRe = regexp.MustCompile(`(?s)"response"\s*:\s*"(.*?)"(,|\n|\})`)
)

// Extract recovers a {response, reference} pair from the raw text of a
// Gemini reply. The model is instructed to emit strict JSON but often wraps
// it in code fences, double-encodes it, or ignores the instruction entirely,
// so this runs a cascade of independent attempts ordered from the most
// structured assumption to the least. The first attempt that produces a
// usable response wins. Returns nil when nothing usable is found.
func Extract(raw string) *Extracted {
	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))
	if cleaned == "" {
		return nil
	}

	attempts := []func(string) *Extracted{
		extractDirect,
		extractBraceSpan,
		extractResponseField,
		extractProse,
	}
	for _, attempt := range attempts {
		if got := attempt(cleaned); got != nil {
			return got
		}
	}
	return nil
}

// extractDirect parses the whole text as a JSON object.
func extractDirect(cleaned string) *Extracted {
	return parseObject(cleaned)
}

// extractBraceSpan parses the first-to-last brace span within the text.
func extractBraceSpan(cleaned string) *Extracted {
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil
	}
	return parseObject(cleaned[start : end+1])
}

// extractResponseField scrapes a literal "response": "..." pair.
func extractResponseField(cleaned string) *Extracted {
	match := responseRe.FindStringSubmatch(cleaned)
	if match == nil || match[1] == "" {
		return nil
	}
	return &Extracted{
		Response:  strings.ReplaceAll(match[1], `\"`, `"`),
		Reference: NoReference,
	}
}

// extractProse takes any non-trivial remaining text as the answer itself.
func extractProse(cleaned string) *Extracted {
	if len(cleaned) <= 10 {
		return nil
	}
	return &Extracted{Response: cleaned, Reference: NoReference}
}

// parseObject unmarshals text as {response, reference}. When the response
// field itself holds a JSON object (the model sometimes double-encodes its
// answer), the inner object is preferred. One level of unwrapping only;
// anything deeper falls through to the outer result.
func parseObject(text string) *Extracted {
	var outer Extracted
	if err := json.Unmarshal([]byte(text), &outer); err != nil || outer.Response == "" {
		return nil
	}

	if strings.Contains(outer.Response, "{") {
		var inner Extracted
		if err := json.Unmarshal([]byte(outer.Response), &inner); err == nil && inner.Response != "" {
			if inner.Reference == "" {
				inner.Reference = NoReference
			}
			return &inner
		}
	}

	if outer.Reference == "" {
		outer.Reference = NoReference
	}
	return &outer
}
