package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/gradegate/internal/claude"
	"github.com/dshills/gradegate/internal/config"
	"github.com/dshills/gradegate/internal/gitctx"
	"github.com/dshills/gradegate/internal/output"
	"github.com/dshills/gradegate/internal/review"
	"github.com/dshills/gradegate/internal/submission"
	"github.com/spf13/cobra"
)

var (
	flagDiff     string
	flagReview   string
	flagOutput   string
	flagTaskType string
	flagTimeout  int
	flagRange    string
	flagBin      string
)

func addGradeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDiff, "diff", "", "Path to the candidate's diff file")
	cmd.Flags().StringVar(&flagReview, "review", "", "Path to the candidate's REVIEW.md")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Path to write the result JSON")
	cmd.Flags().StringVar(&flagTaskType, "task-type", "", "Assignment variant (backend, frontend, fullstack)")
	cmd.Flags().IntVar(&flagTimeout, "timeout", 0, "Tool invocation timeout in seconds")
	cmd.Flags().StringVar(&flagRange, "range", "", "Produce the diff from a git revision range instead of --diff")
	cmd.Flags().StringVar(&flagBin, "claude-bin", "", "Review tool binary (default \"claude\")")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagBin != "" {
		m["bin"] = flagBin
	}
	if flagTimeout > 0 {
		m["timeoutSeconds"] = fmt.Sprintf("%d", flagTimeout)
	}
	if flagTaskType != "" {
		m["taskType"] = flagTaskType
	}
	return m
}

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a candidate submission",
	Long:  "Grade a candidate submission by running the review tool over the diff and REVIEW.md, writing the score record to --output.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		task, err := submission.ParseTaskType(cfg.TaskType)
		if err != nil {
			return err
		}

		if flagOutput == "" {
			return fmt.Errorf("--output is required")
		}
		if flagDiff == "" && flagRange == "" {
			return fmt.Errorf("either --diff or --range is required")
		}

		sub, err := loadSubmission(task)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitError
			return nil
		}

		if strings.TrimSpace(sub.Diff) == "" {
			fmt.Fprintln(os.Stderr, "Error: diff file is empty or does not exist")
			exitCode = ExitError
			return nil
		}

		runGrade(sub, cfg)
		return nil
	},
}

func loadSubmission(task submission.TaskType) (submission.Submission, error) {
	if flagRange != "" {
		diff, err := gitctx.Range(flagRange)
		if err != nil {
			return submission.Submission{}, err
		}
		rev, err := submission.ReadOptional(flagReview)
		if err != nil {
			return submission.Submission{}, fmt.Errorf("reading review: %w", err)
		}
		return submission.Submission{Diff: diff, Review: rev, Task: task}, nil
	}
	return submission.Load(flagDiff, flagReview, task)
}

// runGrade drives the pipeline past input validation. From here on a result
// record is always written: tool failures and unparseable responses become
// an error-shaped record and a nonzero exit, a timeout degrades to the
// synthetic manual-review record and exits zero.
func runGrade(sub submission.Submission, cfg config.Config) {
	if claude.MissingToken() {
		fmt.Fprintf(os.Stderr, "Warning: %s is not set\n", claude.TokenEnv)
	}

	inv := claude.New(cfg.Bin, cfg.Redact)

	res, err := review.Run(context.Background(), inv, sub, cfg)
	failed := err != nil
	if failed {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		res = review.ErrorResult(err)
	}

	if err := output.WriteResult(res, flagOutput); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitError
		return
	}

	output.PrintSummary(os.Stdout, res)

	// An error-shaped result the tool itself returned still parsed cleanly
	// and counts as normal completion; only failures converted here fail the
	// run.
	if failed {
		exitCode = ExitError
	}
}

func init() {
	addGradeFlags(gradeCmd)
}
