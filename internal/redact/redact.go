package redact

import "regexp"

const placeholder = "[REDACTED]"

// secretPatterns are regex heuristics for common credential shapes.
var secretPatterns = []*regexp.Regexp{
	// Anthropic API keys
	regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`),
	// Bearer tokens
	regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`),
	// JWTs (three base64 segments separated by dots)
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	// Generic secrets/tokens in assignments
	regexp.MustCompile(`(?i)(secret|token|password|credential)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{16,})["']?`),
}

// Secrets replaces detected credentials in text with [REDACTED].
func Secrets(text string) string {
	result := text
	for _, pat := range secretPatterns {
		result = pat.ReplaceAllString(result, placeholder)
	}
	return result
}
