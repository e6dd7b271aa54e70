package gitctx

import (
	"fmt"
	"os/exec"
	"strings"
)

// Range returns the diff for a revision range (e.g. origin/main..HEAD) by
// shelling out to git. Two-dot ranges are compared against the merge base.
func Range(revRange string) (string, error) {
	diffRange := revRange
	if strings.Contains(revRange, "..") && !strings.Contains(revRange, "...") {
		diffRange = strings.Replace(revRange, "..", "...", 1)
	}
	diff, err := gitOutput("diff", diffRange)
	if err != nil {
		return "", fmt.Errorf("git diff %s: %w", revRange, err)
	}
	return diff, nil
}

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %w", msg, err)
		}
		return "", err
	}
	return stdout.String(), nil
}
