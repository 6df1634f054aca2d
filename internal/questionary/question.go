// Package questionary holds the sets of questions asked before a pull request is
// opened and turns the answers into rows for the description table.
package questionary

import (
	"strings"

	gusherrors "gush.dev/gush/internal/errors"
	"gush.dev/gush/internal/prompt"
)

// Question is a single entry of a questionary
type Question struct {
	Statement    string
	Validator    prompt.Validator
	Default      string
	MaxAttempts  int
	Autocomplete []string
}

// Prompt returns the text shown to the user, including the default when there is one.
func (q Question) Prompt() string {
	if q.Default == "" {
		return q.Statement
	}
	return q.Statement + " [" + q.Default + "] "
}

// Request converts the question into a prompt request.
func (q Question) Request() prompt.Request {
	return prompt.Request{
		Prompt:       q.Prompt(),
		Validate:     q.Validator,
		MaxAttempts:  q.MaxAttempts,
		Default:      q.Default,
		Autocomplete: q.Autocomplete,
	}
}

// NonEmpty trims the answer and rejects it if nothing is left.
func NonEmpty(answer string) (string, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", gusherrors.NewValidationError("empty answer")
	}
	return answer, nil
}

// YesNo accepts y, yes, n or no in any case and normalizes to "yes" or "no".
func YesNo(answer string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return "yes", nil
	case "n", "no":
		return "no", nil
	}
	return "", gusherrors.NewValidationError("answer yes or no")
}
