// Package claude invokes the Claude Code CLI as a subprocess.
//
// The prompt is written to the tool's stdin and stdout is captured whole;
// the caller imposes the timeout through the context, and an invocation cut
// off by the deadline returns an error wrapping context.DeadlineExceeded so
// the engine can degrade instead of failing. Stderr from a failed invocation
// is folded into the error after secret redaction, since it ends up in CI
// logs and the persisted error record.
package claude
