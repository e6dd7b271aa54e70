package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/gradegate/internal/config"
	"github.com/dshills/gradegate/internal/submission"
)

// Invoker runs the external review tool with a prompt on stdin and returns
// its raw stdout. An invocation cut off by the context deadline must return
// an error wrapping context.DeadlineExceeded.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Run grades a submission: build the prompt, invoke the tool under the
// configured timeout, and resolve the response.
//
// A timeout is not an error — it returns the synthetic manual-review result
// so the caller exits cleanly. Tool failures and unparseable responses
// propagate; the CLI converts them into a persisted error record.
func Run(ctx context.Context, inv Invoker, sub submission.Submission, cfg config.Config) (*Result, error) {
	prompt := BuildPrompt(sub)

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	raw, err := inv.Invoke(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return TimeoutResult(), nil
		}
		return nil, fmt.Errorf("invoking %s: %w", inv.Name(), err)
	}

	return Resolve(raw)
}
