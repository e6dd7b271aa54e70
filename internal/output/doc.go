// Package output persists the score record and prints the console summary.
//
// The result file is a single pretty-printed UTF-8 JSON document written in
// one full write; the summary is two stdout lines (score and recommendation)
// with N/A for fields the tool did not return.
package output
