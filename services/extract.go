package services

import (
	"errors"
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(\\{.*?\\})\\s*```")

// ExtractJSON locates a JSON object inside a free-text model reply. A fenced
// ```json block wins; otherwise the first '{' through the last '}' is taken.
// The caller unmarshals the result; a miss here is a parse failure, never a
// panic.
func ExtractJSON(reply string) (string, error) {
	trimmed := strings.TrimSpace(reply)
	if trimmed == "" {
		return "", errors.New("empty model reply")
	}

	if m := fencedJSON.FindStringSubmatch(trimmed); m != nil {
		return m[1], nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end <= start {
		return "", errors.New("no JSON object found in model reply")
	}
	return trimmed[start : end+1], nil
}
