package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dshills/gradegate/internal/review"
)

// notAvailable is printed for fields the tool's response did not include.
const notAvailable = "N/A"

// WriteResult writes the score record as pretty-printed JSON to path.
func WriteResult(res *review.Result, path string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

// PrintSummary prints the two-line score/recommendation summary.
func PrintSummary(w io.Writer, res *review.Result) {
	score := notAvailable
	if res.Score != nil {
		score = fmt.Sprintf("%d", *res.Score)
	}
	rec := notAvailable
	if res.Recommendation != "" {
		rec = string(res.Recommendation)
	}
	fmt.Fprintf(w, "Score: %s/100\n", score)
	fmt.Fprintf(w, "Recommendation: %s\n", rec)
}
