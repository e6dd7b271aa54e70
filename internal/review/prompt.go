package review

import (
	"strings"

	"github.com/dshills/gradegate/internal/submission"
)

// emptyReviewPlaceholder is substituted when the candidate left REVIEW.md
// missing or blank.
const emptyReviewPlaceholder = "(REVIEW.md not filled in)"

const fullstackPrompt = `You are a senior fullstack developer performing a code review of a take-home assignment.

THE ASSIGNMENT:
The candidate had to find the problems in the code (backend + frontend), describe them in REVIEW.md, fix them, and write tests.

KNOWN PROBLEMS IN THE ORIGINAL CODE:

Backend (Python/FastAPI):
1. SQL injection - raw query built with an f-string (critical vulnerability)
2. No input validation - plain dict instead of a Pydantic schema (reliability)
3. No error handling - missing try/except (reliability)
4. Hard-coded secrets - SECRET_KEY in source code (security)

Frontend (React/TypeScript):
5. Memory leak - missing cleanup in useEffect (resource leak)
6. XSS vulnerability - dangerouslySetInnerHTML without sanitization (security)
7. any types - missing type annotations (TypeScript)
8. Wrong list key - array index instead of id in map (React)

CANDIDATE'S REVIEW.md:
{review_content}

DIFF (candidate's changes):
{diff_content}

SCORING CRITERIA:
- Problems found (0-30 points): how many of the 8 problems are described in REVIEW.md
- Quality of fixes (0-35 points): correctness and cleanliness of the code
- Review quality (0-15 points): clarity of the write-up, best practices
- Test quality (0-20 points): coverage of the critical cases

RESPOND STRICTLY IN JSON FORMAT:
{
  "score": <total score 0-100>,
  "problems_found": ["sql_injection", "no_validation", "no_error_handling", "hardcoded_secrets", "memory_leak", "xss", "any_types", "wrong_key"],
  "problems_fixed": ["sql_injection", ...],
  "breakdown": {
    "problems": <0-30>,
    "fixes": <0-35>,
    "review": <0-15>,
    "tests": <0-20>
  },
  "summary": "<2-3 sentences about the candidate's work>",
  "strengths": ["strength 1", "strength 2"],
  "improvements": ["possible improvement 1", "possible improvement 2"],
  "recommendation": "pass|review|reject"
}

Where recommendation:
- "pass" - score >= 60, automatic pass
- "review" - score 40-59, manual review by a recruiter required
- "reject" - score < 40, automatic rejection

IMPORTANT: Respond ONLY with valid JSON, no markdown, no commentary.`

// BuildPrompt substitutes the submission's content into the grading template.
// Only the fullstack template exists; the task type is carried on the
// submission for forward compatibility but does not select a template yet.
// Content is substituted verbatim — it must not contain the literal
// placeholder tokens.
func BuildPrompt(sub submission.Submission) string {
	reviewContent := sub.Review
	if strings.TrimSpace(reviewContent) == "" {
		reviewContent = emptyReviewPlaceholder
	}
	r := strings.NewReplacer(
		"{review_content}", reviewContent,
		"{diff_content}", sub.Diff,
	)
	return r.Replace(fullstackPrompt)
}
