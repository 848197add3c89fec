package srs

import (
	"math/rand"

	"github.com/example/vocabtrainer/pkg/models"
)

// Variant tags how a quiz item presents its word.
type Variant string

const (
	// VariantPlain asks the word on its own
	VariantPlain Variant = "plain"
	// VariantWithExample shows the example sentence alongside the question
	VariantWithExample Variant = "with_example"
)

// QuizItem is a single question slot in a session. Ephemeral, never persisted.
type QuizItem struct {
	Word    models.Word
	Variant Variant
}

// BuildSession turns a list of due words into an ordered quiz session. Words
// that carry an example are asked twice: once with the example sentence and
// once plain, and the contextual question always comes first. Words without
// an example are asked once, at a random position. Session length is
// therefore between len(due) and 2*len(due).
func BuildSession(due []models.Word, rng *rand.Rand) []QuizItem {
	session := make([]QuizItem, 0, 2*len(due))

	for _, word := range due {
		if word.Example != nil {
			exampleIdx := rng.Intn(len(session) + 1)
			session = insertAt(session, exampleIdx, QuizItem{Word: word, Variant: VariantWithExample})
			// The plain variant lands strictly after the contextual one.
			// Later insertions shift both by the same amount, so the
			// relative order holds for the whole session.
			plainIdx := exampleIdx + 1 + rng.Intn(len(session)-exampleIdx)
			session = insertAt(session, plainIdx, QuizItem{Word: word, Variant: VariantPlain})
		} else {
			idx := rng.Intn(len(session) + 1)
			session = insertAt(session, idx, QuizItem{Word: word, Variant: VariantPlain})
		}
	}
	return session
}

func insertAt(items []QuizItem, idx int, item QuizItem) []QuizItem {
	items = append(items, QuizItem{})
	copy(items[idx+1:], items[idx:])
	items[idx] = item
	return items
}
