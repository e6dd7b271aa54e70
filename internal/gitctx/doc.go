// Package gitctx produces the candidate diff from a git revision range, for
// runs where CI has not already written a diff file.
//
// Two-dot ranges are rewritten to the merge-base (three-dot) form so the
// diff covers only the candidate's changes, not drift on the base branch.
package gitctx
