package models

// Example is a sentence pair attached to a word for contextual quizzing.
type Example struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation"`
}

// Word represents a vocabulary item being learned
type Word struct {
	ID         string   `json:"id" db:"id"`
	SourceText string   `json:"source_text" db:"source_text"`
	TargetText string   `json:"target_text" db:"target_text"`
	Context    string   `json:"context" db:"context"` // provenance label, e.g. "added from chat"
	Example    *Example `json:"example,omitempty" db:"-"`
}
