package phases

import (
	"context"
	"errors"
	"fmt"

	"github.com/CodexForgeBR/can-exit/internal/exitcode"
	"github.com/CodexForgeBR/can-exit/internal/report"
	"github.com/CodexForgeBR/can-exit/internal/tui"
)

// VerdictInput contains what a search run produced.
type VerdictInput struct {
	Reachable bool
	Decided   bool // the session reached a terminal state
	FastCheck bool
	SearchErr error
}

// VerdictResult contains the outcome of verdict processing.
type VerdictResult struct {
	ExitCode int
	Verdict  string // report verdict
	Reason   string
}

// ProcessVerdict maps a finished search to an exit code. A search error wins
// over any verdict; an animated verdict that disagrees with the fast check is
// an error.
func ProcessVerdict(input VerdictInput) VerdictResult {
	if input.SearchErr != nil {
		if errors.Is(input.SearchErr, context.Canceled) || errors.Is(input.SearchErr, tui.ErrAborted) {
			return VerdictResult{
				ExitCode: exitcode.Interrupted,
				Verdict:  report.VerdictInterrupted,
				Reason:   input.SearchErr.Error(),
			}
		}
		return VerdictResult{
			ExitCode: exitcode.Error,
			Verdict:  report.VerdictError,
			Reason:   input.SearchErr.Error(),
		}
	}

	if !input.Decided {
		return VerdictResult{
			ExitCode: exitcode.Error,
			Verdict:  report.VerdictError,
			Reason:   "search ended without a verdict",
		}
	}

	if input.Reachable != input.FastCheck {
		return VerdictResult{
			ExitCode: exitcode.Error,
			Verdict:  report.VerdictError,
			Reason: fmt.Sprintf("animated search says %s but the fast check says %s",
				verdictWord(input.Reachable), verdictWord(input.FastCheck)),
		}
	}

	if input.Reachable {
		return VerdictResult{ExitCode: exitcode.Reachable, Verdict: report.VerdictReachable}
	}
	return VerdictResult{ExitCode: exitcode.Unreachable, Verdict: report.VerdictUnreachable}
}

func verdictWord(reachable bool) string {
	if reachable {
		return "reachable"
	}
	return "unreachable"
}
