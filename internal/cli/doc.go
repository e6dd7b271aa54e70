// Package cli wires together the Cobra command tree for the gradegate
// binary.
//
// It defines the root command and subcommands (grade, config, version),
// binds flags, reads configuration, invokes the grading engine, and
// guarantees a well-formed result file is written for every run that passes
// input validation — failures after that point are converted into an
// error-shaped record rather than leaving the output path empty.
package cli
