package questionary_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	gusherrors "gush.dev/gush/internal/errors"
	"gush.dev/gush/internal/prompt"
	"gush.dev/gush/internal/questionary"
)

// stubPrompter answers by prompt text, falling back to the request default
type stubPrompter struct {
	answers  map[string]string
	requests []prompt.Request
	failOn   string
}

func (p *stubPrompter) Ask(req prompt.Request) (string, error) {
	p.requests = append(p.requests, req)
	if p.failOn != "" && req.Prompt == p.failOn {
		return "", gusherrors.NewInputExhaustedError(req.Prompt, req.MaxAttempts, nil)
	}
	answer, ok := p.answers[req.Prompt]
	if !ok {
		answer = req.Default
	}
	if req.Validate == nil {
		return answer, nil
	}
	return req.Validate(answer)
}

func TestKindFor(t *testing.T) {
	cases := map[string]questionary.Kind{
		"symfony-docs": questionary.KindDocumentation,
		"docs":         questionary.KindDocumentation,
		"mydocsite":    questionary.KindDocumentation,
		"widgets":      questionary.KindGeneral,
		"Docs":         questionary.KindGeneral,
		"DOCS-site":    questionary.KindGeneral,
		"doc":          questionary.KindGeneral,
		"":             questionary.KindGeneral,
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, want, questionary.KindFor(name))
		})
	}
}

func TestForRepository(t *testing.T) {
	require.IsType(t, questionary.DocumentationQuestionary{}, questionary.ForRepository("symfony-docs"))
	require.IsType(t, questionary.GeneralQuestionary{}, questionary.ForRepository("symfony"))
}

func TestQuestionariesAreWellFormed(t *testing.T) {
	for _, kind := range []questionary.Kind{questionary.KindGeneral, questionary.KindDocumentation} {
		t.Run(kind.String(), func(t *testing.T) {
			q := questionary.New(kind)
			require.Equal(t, []string{"Q", "A"}, q.Headers())
			require.NotEmpty(t, q.Questions())
			for _, question := range q.Questions() {
				require.NotEmpty(t, question.Statement)
				require.NotNil(t, question.Validator)
				if question.Default != "" {
					_, err := question.Validator(question.Default)
					require.NoError(t, err, "default of %q must pass its own validator", question.Statement)
				}
			}
		})
	}
}

func TestQuestionPrompt(t *testing.T) {
	require.Equal(t, "Bug fix? [no] ", questionary.Question{Statement: "Bug fix?", Default: "no"}.Prompt())
	require.Equal(t, "Fixed tickets", questionary.Question{Statement: "Fixed tickets"}.Prompt())
}

func TestNonEmpty(t *testing.T) {
	for _, input := range []string{"", " ", "\t\n"} {
		_, err := questionary.NonEmpty(input)
		require.ErrorIs(t, err, gusherrors.ErrValidation)
		require.EqualError(t, err, "empty answer")
	}

	answer, err := questionary.NonEmpty("  hi  ")
	require.NoError(t, err)
	require.Equal(t, "hi", answer)
}

func TestYesNo(t *testing.T) {
	for input, want := range map[string]string{"y": "yes", "YES": "yes", " n ": "no", "No": "no"} {
		answer, err := questionary.YesNo(input)
		require.NoError(t, err)
		require.Equal(t, want, answer)
	}

	_, err := questionary.YesNo("maybe")
	require.ErrorIs(t, err, gusherrors.ErrValidation)
}

func TestCollect(t *testing.T) {
	t.Run("collects answers in question order", func(t *testing.T) {
		p := &stubPrompter{answers: map[string]string{
			"Doc fix? [yes] ":   "n",
			"Applies to [all] ": "2.8+",
		}}

		rows, err := questionary.Collect(p, questionary.DocumentationQuestionary{})
		require.NoError(t, err)
		require.Equal(t, []questionary.AnsweredRow{
			{Label: "Doc fix?", Answer: "no"},
			{Label: "New docs?", Answer: "no"},
			{Label: "Applies to", Answer: "2.8+"},
			{Label: "Fixed tickets", Answer: "#000"},
		}, rows)

		require.Len(t, p.requests, 4)
		require.Equal(t, 3, p.requests[0].MaxAttempts)
		require.Equal(t, []string{"yes", "no"}, p.requests[0].Autocomplete)
	})

	t.Run("stops at the first failed question", func(t *testing.T) {
		p := &stubPrompter{failOn: "New feature? [no] "}

		rows, err := questionary.Collect(p, questionary.GeneralQuestionary{})
		require.Nil(t, rows)
		require.True(t, errors.Is(err, gusherrors.ErrInputExhausted))
		require.Len(t, p.requests, 2)
	})
}
