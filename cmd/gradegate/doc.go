// Gradegate scores take-home assignment submissions with the Claude Code CLI.
//
// It reads a candidate's diff and REVIEW.md, embeds them in a fixed grading
// prompt, runs the claude binary as a subprocess, parses the JSON response,
// and writes a structured score record suitable for CI gating.
//
// Usage:
//
//	gradegate grade --diff changes.diff --review REVIEW.md --output result.json
//	gradegate grade --range origin/main..HEAD --review REVIEW.md --output result.json
//	gradegate config show
//
// See https://github.com/dshills/gradegate for full documentation.
package main
