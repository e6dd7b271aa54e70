package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes. Graceful timeout degradation still exits 0; a grading failure
// exits 1 after the error record has been written.
const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitUsageError = 2
)

var rootCmd = &cobra.Command{
	Use:   "gradegate",
	Short: "AI grading for take-home assignment submissions",
	Long:  "Gradegate grades candidate submissions by running the Claude Code CLI over the candidate's diff and REVIEW.md, writing a structured score record for CI gating.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print gradegate version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "gradegate version %s\n", version)
	},
}
