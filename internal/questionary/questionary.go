package questionary

import "strings"

const yesNoAttempts = 3

var yesNoValues = []string{"yes", "no"}

// Questionary is an ordered set of questions plus the headers of the table the
// answers are rendered into.
type Questionary interface {
	Headers() []string
	Questions() []Question
}

// Kind identifies which questionary applies to a repository
type Kind int

const (
	// KindGeneral is used for code repositories
	KindGeneral Kind = iota
	// KindDocumentation is used for documentation repositories
	KindDocumentation
)

func (k Kind) String() string {
	switch k {
	case KindDocumentation:
		return "documentation"
	default:
		return "general"
	}
}

// KindFor reports which questionary applies to the named repository.
// Any name containing "docs" is treated as a documentation repository.
func KindFor(repoName string) Kind {
	if strings.Contains(repoName, "docs") {
		return KindDocumentation
	}
	return KindGeneral
}

// ForRepository returns the questionary to use for the named repository.
func ForRepository(repoName string) Questionary {
	return New(KindFor(repoName))
}

// New returns the questionary of the given kind.
func New(kind Kind) Questionary {
	if kind == KindDocumentation {
		return DocumentationQuestionary{}
	}
	return GeneralQuestionary{}
}

// GeneralQuestionary asks about the nature of a code change
type GeneralQuestionary struct{}

// Headers returns the table headers
func (GeneralQuestionary) Headers() []string {
	return []string{"Q", "A"}
}

// Questions returns the questions in display order
func (GeneralQuestionary) Questions() []Question {
	return []Question{
		yesNo("Bug fix?", "no"),
		yesNo("New feature?", "no"),
		yesNo("BC breaks?", "no"),
		yesNo("Deprecations?", "no"),
		yesNo("Tests pass?", "yes"),
		{Statement: "Fixed tickets", Validator: NonEmpty, Default: "#000"},
		{
			Statement:    "License",
			Validator:    NonEmpty,
			Default:      "MIT",
			Autocomplete: []string{"MIT", "Apache-2.0", "BSD-3-Clause", "GPL-3.0", "MPL-2.0"},
		},
		{Statement: "Doc PR", Validator: NonEmpty, Default: "-"},
	}
}

// DocumentationQuestionary asks about the nature of a documentation change
type DocumentationQuestionary struct{}

// Headers returns the table headers
func (DocumentationQuestionary) Headers() []string {
	return []string{"Q", "A"}
}

// Questions returns the questions in display order
func (DocumentationQuestionary) Questions() []Question {
	return []Question{
		yesNo("Doc fix?", "yes"),
		yesNo("New docs?", "no"),
		{Statement: "Applies to", Validator: NonEmpty, Default: "all"},
		{Statement: "Fixed tickets", Validator: NonEmpty, Default: "#000"},
	}
}

func yesNo(statement, def string) Question {
	return Question{
		Statement:    statement,
		Validator:    YesNo,
		Default:      def,
		MaxAttempts:  yesNoAttempts,
		Autocomplete: yesNoValues,
	}
}
