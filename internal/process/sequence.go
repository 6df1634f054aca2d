package process

import (
	"context"
	"strings"

	gusherrors "gush.dev/gush/internal/errors"
)

// Step is one command of a sequence
type Step struct {
	Line         string
	AllowFailure bool
}

// StepFailure records a step that did not succeed
type StepFailure struct {
	Step   Step
	Result Result
	Err    error
}

// Report describes what a sequence did
type Report struct {
	Executed        []Step
	AllowedFailures []StepFailure
}

// Logger receives diagnostics about tolerated failures
type Logger interface {
	Debug(format string, args ...interface{})
}

// Outcome is how a step of a sequence ended
type Outcome int

const (
	OutcomeSucceeded Outcome = iota
	// OutcomeTolerated is a failure of a step with AllowFailure set
	OutcomeTolerated
	OutcomeFailed
)

// Observer is told about each step as it runs
type Observer interface {
	StepStarted(idx int, step Step)
	StepFinished(idx int, step Step, outcome Outcome, err error)
}

// RunSequence runs steps strictly in order, each exactly once. A failing step
// with AllowFailure set is recorded and skipped over; any other failure stops the
// sequence with a CommandFailedError and no later step is run.
func RunSequence(ctx context.Context, runner Runner, steps []Step, log Logger) (*Report, error) {
	return RunObservedSequence(ctx, runner, steps, log, nil)
}

// RunObservedSequence is RunSequence reporting progress to observer
func RunObservedSequence(ctx context.Context, runner Runner, steps []Step, log Logger, observer Observer) (*Report, error) {
	report := &Report{}
	for idx, step := range steps {
		if observer != nil {
			observer.StepStarted(idx, step)
		}

		result, err := runner.Run(ctx, step.Line)
		report.Executed = append(report.Executed, step)

		if err == nil && result.ExitStatus == 0 {
			if observer != nil {
				observer.StepFinished(idx, step, OutcomeSucceeded, nil)
			}
			continue
		}

		if !step.AllowFailure {
			failure := gusherrors.NewCommandFailedError(step.Line, result.ExitStatus, result.Output, err)
			if observer != nil {
				observer.StepFinished(idx, step, OutcomeFailed, failure)
			}
			return report, failure
		}

		report.AllowedFailures = append(report.AllowedFailures, StepFailure{Step: step, Result: result, Err: err})
		if log != nil {
			log.Debug("Ignoring failure of %q (exit status %d): %s", step.Line, result.ExitStatus, strings.TrimSpace(result.Output))
		}
		if observer != nil {
			observer.StepFinished(idx, step, OutcomeTolerated, nil)
		}
	}
	return report, nil
}
