package review

import (
	"encoding/json"
	"fmt"
	"strings"
)

// diagnosticLimit bounds how much of an unparseable response is carried in
// the error message.
const diagnosticLimit = 500

// Resolve turns the external tool's raw output into a Result.
//
// The attempts are ordered and each is best-effort:
//  1. Parse the whole text as the tool's own JSON envelope and unwrap the
//     "result" field (or a bare JSON string) into the candidate text.
//  2. Parse the candidate text directly as a Result.
//  3. Parse the substring from the first '{' to the last '}' as a Result.
//
// If every attempt fails, the error carries the first 500 characters of the
// candidate text for diagnostics.
func Resolve(raw string) (*Result, error) {
	candidate := unwrapEnvelope(strings.TrimSpace(raw))

	if res, err := parseResult(candidate); err == nil {
		return res, nil
	}

	if start := strings.Index(candidate, "{"); start != -1 {
		if end := strings.LastIndex(candidate, "}"); end > start {
			if res, err := parseResult(candidate[start : end+1]); err == nil {
				return res, nil
			}
		}
	}

	return nil, fmt.Errorf("cannot parse review result from response: %s", truncate(candidate, diagnosticLimit))
}

// unwrapEnvelope strips one layer of CLI output wrapping. The claude binary's
// JSON output mode wraps the model's text in {"result": "..."}; anything that
// does not match that shape passes through unchanged.
func unwrapEnvelope(raw string) string {
	var outer any
	if err := json.Unmarshal([]byte(raw), &outer); err != nil {
		return raw
	}
	switch v := outer.(type) {
	case map[string]any:
		if inner, ok := v["result"].(string); ok {
			return inner
		}
	case string:
		return v
	}
	return raw
}

func parseResult(text string) (*Result, error) {
	text = strings.TrimSpace(text)
	// Reject non-objects early: json.Unmarshal of "null" into a struct
	// succeeds without touching it, which would fabricate an empty result.
	if !strings.HasPrefix(text, "{") {
		return nil, fmt.Errorf("not a JSON object")
	}
	var res Result
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
