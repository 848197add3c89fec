package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vocabtrainer/internal/srs"
	"github.com/example/vocabtrainer/pkg/models"
)

func testCatalog() []models.Word {
	return []models.Word{
		{ID: "w1", SourceText: "alma", TargetText: "りんご"},
		{ID: "w2", SourceText: "kutya", TargetText: "犬"},
		{ID: "w3", SourceText: "ház", TargetText: "家"},
		{ID: "w4", SourceText: "víz", TargetText: "水"},
		{ID: "w5", SourceText: "könyv", TargetText: "本"},
	}
}

func TestBuildQuestionsOptionsAndCorrectIndex(t *testing.T) {
	catalog := testCatalog()
	session := []srs.QuizItem{
		{Word: catalog[0], Variant: srs.VariantPlain},
		{Word: catalog[1], Variant: srs.VariantPlain},
	}

	for seed := int64(0); seed < 50; seed++ {
		gen := NewGeneratorWithRand(rand.New(rand.NewSource(seed)))
		questions := gen.BuildQuestions(session, catalog)
		require.Len(t, questions, 2)

		for _, q := range questions {
			require.Len(t, q.Options, 4, "seed %d", seed)
			require.GreaterOrEqual(t, q.CorrectIndex, 0)
			require.Less(t, q.CorrectIndex, len(q.Options))

			var correct string
			if q.Direction == SourceToTarget {
				assert.Equal(t, q.Item.Word.SourceText, q.Prompt)
				correct = q.Item.Word.TargetText
			} else {
				assert.Equal(t, q.Item.Word.TargetText, q.Prompt)
				correct = q.Item.Word.SourceText
			}
			assert.Equal(t, correct, q.Options[q.CorrectIndex], "seed %d", seed)

			// The correct answer appears exactly once.
			count := 0
			for _, opt := range q.Options {
				if opt == correct {
					count++
				}
			}
			assert.Equal(t, 1, count, "seed %d", seed)
		}
	}
}

func TestBuildQuestionsSmallCatalog(t *testing.T) {
	catalog := testCatalog()[:2]
	session := []srs.QuizItem{{Word: catalog[0], Variant: srs.VariantPlain}}

	gen := NewGeneratorWithRand(rand.New(rand.NewSource(1)))
	questions := gen.BuildQuestions(session, catalog)
	require.Len(t, questions, 1)
	// One distractor available, so two options in total.
	assert.Len(t, questions[0].Options, 2)
}

func TestBuildQuestionsExampleHint(t *testing.T) {
	word := models.Word{
		ID:         "w1",
		SourceText: "alma",
		TargetText: "りんご",
		Example:    &models.Example{Sentence: "Az alma piros.", Translation: "りんごは赤い。"},
	}
	session := []srs.QuizItem{
		{Word: word, Variant: srs.VariantWithExample},
		{Word: word, Variant: srs.VariantPlain},
	}

	gen := NewGeneratorWithRand(rand.New(rand.NewSource(3)))
	questions := gen.BuildQuestions(session, testCatalog())

	require.Len(t, questions, 2)
	assert.Equal(t, "Az alma piros.", questions[0].ExampleSentence)
	assert.Equal(t, "りんごは赤い。", questions[0].ExampleTranslation)
	assert.Empty(t, questions[1].ExampleSentence)
}

func TestBuildQuestionsEmptySession(t *testing.T) {
	gen := NewGeneratorWithRand(rand.New(rand.NewSource(1)))
	assert.Empty(t, gen.BuildQuestions(nil, testCatalog()))
}
