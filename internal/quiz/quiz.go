package quiz

import (
	"math/rand"
	"time"

	"github.com/example/vocabtrainer/internal/srs"
	"github.com/example/vocabtrainer/pkg/models"
)

// Direction controls which side of the word pair is the prompt
type Direction int

const (
	// SourceToTarget asks the source-language word, answers are translations
	SourceToTarget Direction = iota
	// TargetToSource asks the translation, answers are source-language words
	TargetToSource
)

const optionCount = 4

// Question is a rendered multiple-choice question for one session slot
type Question struct {
	Item         srs.QuizItem
	Direction    Direction
	Prompt       string
	Options      []string
	CorrectIndex int
	// Example sentence shown for contextual variants
	ExampleSentence    string
	ExampleTranslation string
}

// Generator builds multiple-choice questions from quiz sessions
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with a time-seeded random source
func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewGeneratorWithRand creates a generator with the given random source
func NewGeneratorWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// BuildQuestions renders every session slot into a four-option question.
// Distractors are drawn from the rest of the catalog; with fewer than four
// catalog words the option list just comes up short.
func (g *Generator) BuildQuestions(session []srs.QuizItem, catalog []models.Word) []Question {
	questions := make([]Question, 0, len(session))
	for _, item := range session {
		questions = append(questions, g.buildQuestion(item, catalog))
	}
	return questions
}

func (g *Generator) buildQuestion(item srs.QuizItem, catalog []models.Word) Question {
	direction := SourceToTarget
	if g.rng.Intn(2) == 1 {
		direction = TargetToSource
	}

	question := Question{
		Item:      item,
		Direction: direction,
	}

	var correct string
	if direction == SourceToTarget {
		question.Prompt = item.Word.SourceText
		correct = item.Word.TargetText
	} else {
		question.Prompt = item.Word.TargetText
		correct = item.Word.SourceText
	}

	if item.Variant == srs.VariantWithExample && item.Word.Example != nil {
		question.ExampleSentence = item.Word.Example.Sentence
		question.ExampleTranslation = item.Word.Example.Translation
	}

	options := append(g.distractors(item.Word, catalog, direction), correct)
	correctIndex := len(options) - 1

	// Shuffle options while tracking where the correct answer lands
	g.rng.Shuffle(len(options), func(i, j int) {
		if i == correctIndex {
			correctIndex = j
		} else if j == correctIndex {
			correctIndex = i
		}
		options[i], options[j] = options[j], options[i]
	})

	question.Options = options
	question.CorrectIndex = correctIndex
	return question
}

// distractors picks up to three wrong answers from other catalog words
func (g *Generator) distractors(word models.Word, catalog []models.Word, direction Direction) []string {
	candidates := make([]string, 0, len(catalog))
	for _, w := range catalog {
		if w.ID == word.ID {
			continue
		}
		if direction == SourceToTarget {
			candidates = append(candidates, w.TargetText)
		} else {
			candidates = append(candidates, w.SourceText)
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > optionCount-1 {
		candidates = candidates[:optionCount-1]
	}
	return candidates
}
