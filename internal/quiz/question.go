package quiz

import "fmt"

// ChoiceCount is the number of choices every question carries.
const ChoiceCount = 4

// Question is a single multiple-choice question. Never mutated after load.
type Question struct {
	Text               string   `json:"text" toml:"text"`
	Choices            []string `json:"choices" toml:"choices"`
	CorrectChoiceIndex int      `json:"correct_choice_index" toml:"correct_choice_index"`
}

// IsCorrect reports whether choice i is the correct one.
func (q Question) IsCorrect(i int) bool {
	return i == q.CorrectChoiceIndex
}

// ValidChoice reports whether i indexes one of the question's choices.
func (q Question) ValidChoice(i int) bool {
	return i >= 0 && i < len(q.Choices)
}

// Bank is the fixed content of a quiz: its questions and the two
// feedback pools.
type Bank struct {
	Questions     []Question `json:"questions" toml:"questions"`
	Praises       []string   `json:"praises" toml:"praises"`
	Admonishments []string   `json:"admonishments" toml:"admonishments"`
}

// Validate checks the structural invariants a State relies on.
func (b Bank) Validate() error {
	if len(b.Questions) == 0 {
		return &BankError{Field: "questions", Reason: "at least one question is required"}
	}
	for i, q := range b.Questions {
		field := fmt.Sprintf("questions[%d]", i)
		if q.Text == "" {
			return &BankError{Field: field + ".text", Reason: "must not be empty"}
		}
		if len(q.Choices) != ChoiceCount {
			return &BankError{Field: field + ".choices", Reason: fmt.Sprintf("want %d choices, got %d", ChoiceCount, len(q.Choices))}
		}
		if !q.ValidChoice(q.CorrectChoiceIndex) {
			return &BankError{Field: field + ".correct_choice_index", Reason: fmt.Sprintf("%d is out of range [0,%d]", q.CorrectChoiceIndex, ChoiceCount-1)}
		}
	}
	if len(b.Praises) == 0 {
		return &BankError{Field: "praises", Reason: "at least one entry is required"}
	}
	if len(b.Admonishments) == 0 {
		return &BankError{Field: "admonishments", Reason: "at least one entry is required"}
	}
	return nil
}
