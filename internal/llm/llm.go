package llm

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
)

// Client abstracts the external model used for resume analysis. Implementations
// make exactly one attempt per call; retries are not part of the contract.
type Client interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}

// InvalidResponseError reports model output that is not valid JSON after
// sanitization. Raw carries the offending text for diagnosis.
type InvalidResponseError struct {
	Raw string
}

func (e *InvalidResponseError) Error() string {
	return "model returned invalid JSON"
}

var (
	openFence  = regexp.MustCompile("(?i)^```(?:json)?[ \t]*\r?\n?")
	closeFence = regexp.MustCompile("(?i)```$")
)

// Sanitize strips a leading ```json (or bare ```) fence and a trailing ```
// fence from model output. Models are known to wrap JSON replies in markdown.
func Sanitize(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = openFence.ReplaceAllString(clean, "")
	clean = closeFence.ReplaceAllString(clean, "")
	return strings.TrimSpace(clean)
}

// ParseResponse sanitizes raw model output and verifies it is JSON. The raw
// text is attached to the error when it is not.
func ParseResponse(raw string) (json.RawMessage, error) {
	clean := Sanitize(raw)
	if !json.Valid([]byte(clean)) {
		return nil, &InvalidResponseError{Raw: clean}
	}
	return json.RawMessage(clean), nil
}
