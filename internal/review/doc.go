// Package review contains the grading types, prompt, and engine.
//
// It defines the Result record written for every graded submission, builds
// the grading prompt from the candidate's diff and REVIEW.md, and resolves
// the Claude CLI's output into a Result through an ordered chain of parsing
// attempts: whole-response envelope unwrap, direct parse, then a brace-scan
// of the first '{' to the last '}'. The chain is deliberately ad hoc — the
// external tool's output format is not contractual — and should stay an
// explicit ordered list rather than grow into a general parser.
//
// A run that exceeds the configured timeout degrades to a synthetic score-50
// "review" result instead of failing, so a slow tool never blocks CI or
// silently drops a submission.
package review
