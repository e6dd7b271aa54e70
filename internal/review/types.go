package review

import "fmt"

// Recommendation is the grading verdict for a submission.
type Recommendation string

const (
	RecommendPass   Recommendation = "pass"
	RecommendReview Recommendation = "review"
	RecommendReject Recommendation = "reject"
)

// Known problem identifiers the grading prompt asks the model to report.
const (
	ProblemSQLInjection    = "sql_injection"
	ProblemNoValidation    = "no_validation"
	ProblemNoErrorHandling = "no_error_handling"
	ProblemHardcodedSecret = "hardcoded_secrets"
	ProblemMemoryLeak      = "memory_leak"
	ProblemXSS             = "xss"
	ProblemAnyTypes        = "any_types"
	ProblemWrongKey        = "wrong_key"
)

// Breakdown splits the score by rubric section. The sections are expected to
// sum to at most 100, but the model is solely responsible for the arithmetic;
// nothing here validates it.
type Breakdown struct {
	Problems int `json:"problems"`
	Fixes    int `json:"fixes"`
	Review   int `json:"review"`
	Tests    int `json:"tests"`
}

// Result is the score record persisted for every graded submission. Score is
// a pointer so a response that omitted it serializes as null rather than 0.
type Result struct {
	Score          *int           `json:"score"`
	ProblemsFound  []string       `json:"problems_found"`
	ProblemsFixed  []string       `json:"problems_fixed"`
	Breakdown      Breakdown      `json:"breakdown"`
	Summary        string         `json:"summary"`
	Strengths      []string       `json:"strengths"`
	Improvements   []string       `json:"improvements"`
	Recommendation Recommendation `json:"recommendation"`
	Error          string         `json:"error,omitempty"`
}

// TimeoutResult is the synthetic record returned when the external tool does
// not finish within the configured timeout. Deliberately not an error: the
// submission degrades to a manual-review signal instead of blocking.
func TimeoutResult() *Result {
	score := 50
	return &Result{
		Score:          &score,
		ProblemsFound:  []string{},
		ProblemsFixed:  []string{},
		Breakdown:      Breakdown{},
		Summary:        "AI review did not complete within the allotted time. Manual review required.",
		Strengths:      []string{},
		Improvements:   []string{"Automated verification could not be completed"},
		Recommendation: RecommendReview,
	}
}

// ErrorResult converts a grading failure into a persistable record so the
// output file is never left missing or partial.
func ErrorResult(err error) *Result {
	score := 0
	return &Result{
		Score:          &score,
		ProblemsFound:  []string{},
		ProblemsFixed:  []string{},
		Breakdown:      Breakdown{},
		Summary:        fmt.Sprintf("AI review failed: %v. Manual review required.", err),
		Strengths:      []string{},
		Improvements:   []string{},
		Recommendation: RecommendReview,
		Error:          err.Error(),
	}
}
