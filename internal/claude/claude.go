package claude

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/dshills/gradegate/internal/redact"
)

// TokenEnv is the credential variable the claude binary authenticates with.
// Its absence is worth a warning but not fatal: the binary may be logged in
// through other means.
const TokenEnv = "CLAUDE_CODE_OAUTH_TOKEN"

// MissingToken reports whether the credential variable is unset.
func MissingToken() bool {
	return os.Getenv(TokenEnv) == ""
}

// CLI invokes the claude binary in non-interactive JSON output mode.
type CLI struct {
	// Bin is the binary name or path, normally "claude".
	Bin string
	// Redact scrubs credential-shaped strings from captured stderr before it
	// is embedded in errors.
	Redact bool
}

// New returns a CLI invoker for the given binary.
func New(bin string, redactDiagnostics bool) *CLI {
	return &CLI{Bin: bin, Redact: redactDiagnostics}
}

// Name returns the binary name for error messages.
func (c *CLI) Name() string {
	return c.Bin
}

// Invoke runs the tool with the prompt on stdin and returns trimmed stdout.
// A nonzero exit becomes an error carrying the tool's stderr; hitting the
// context deadline returns an error wrapping ctx.Err().
func (c *CLI) Invoke(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, c.Bin, "--print", "--output-format", "json")
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("%s did not finish in time: %w", c.Bin, ctxErr)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %v: %s", c.Bin, err, c.diagnostics(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (c *CLI) diagnostics(stderr string) string {
	s := strings.TrimSpace(stderr)
	if s == "" {
		return "(no stderr)"
	}
	if c.Redact {
		s = redact.Secrets(s)
	}
	return s
}
