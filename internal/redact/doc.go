// Package redact removes credential-shaped strings from external tool
// diagnostics before they are persisted in error records or echoed into CI
// logs.
//
// Detection uses regex heuristics for the shapes likely to surface in claude
// CLI stderr: Anthropic API keys, OAuth/bearer tokens, JWTs, and generic
// token assignments.
package redact
