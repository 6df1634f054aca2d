// Package prompt defines the contract between the pull request flows and whatever
// asks the user for input, along with the bounded validation loop every
// implementation shares.
package prompt

import (
	"strings"

	gusherrors "gush.dev/gush/internal/errors"
)

// Unlimited allows a question to be asked until a valid answer is given.
const Unlimited = 0

// Validator normalizes an answer or rejects it with a ValidationError.
type Validator func(answer string) (string, error)

// Request describes a single question put to the user.
type Request struct {
	Prompt       string
	Validate     Validator
	MaxAttempts  int
	Default      string
	Autocomplete []string
}

// Prompter asks the user a question and returns a validated answer.
type Prompter interface {
	Ask(req Request) (string, error)
}

// ReadFunc reads one raw line of input for the given prompt.
type ReadFunc func(message string, suggestions []string) (string, error)

// Ask reads answers with read until one passes validation. A blank answer is
// replaced by the request default when there is one. Each rejection is passed to
// reject so the user can be told what went wrong. After MaxAttempts rejections
// an InputExhaustedError is returned.
func Ask(read ReadFunc, reject func(error), req Request) (string, error) {
	var lastErr error
	attempts := 0
	for req.MaxAttempts == Unlimited || attempts < req.MaxAttempts {
		attempts++

		answer, err := read(req.Prompt, req.Autocomplete)
		if err != nil {
			return "", err
		}

		answer = strings.TrimSpace(answer)
		if answer == "" && req.Default != "" {
			answer = req.Default
		}

		if req.Validate == nil {
			return answer, nil
		}

		value, err := req.Validate(answer)
		if err == nil {
			return value, nil
		}

		lastErr = err
		if reject != nil {
			reject(err)
		}
	}

	return "", gusherrors.NewInputExhaustedError(req.Prompt, attempts, lastErr)
}

// Suggest returns the candidates that start with toComplete, ignoring case.
func Suggest(candidates []string, toComplete string) []string {
	var matches []string
	prefix := strings.ToLower(strings.TrimSpace(toComplete))
	for _, candidate := range candidates {
		if strings.HasPrefix(strings.ToLower(candidate), prefix) {
			matches = append(matches, candidate)
		}
	}
	return matches
}
