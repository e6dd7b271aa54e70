// Package submission loads the candidate's input files into a Submission.
//
// A missing diff or review file yields empty content rather than an error;
// whether empty content is acceptable is decided by the caller (an empty
// review is fine, an empty diff is fatal). Any other read failure propagates.
package submission
