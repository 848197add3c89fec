package wordbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vocabtrainer/pkg/models"
)

// addLearningWords adds words and demotes them into Learning so they qualify
// for the challenge set.
func addLearningWords(t *testing.T, svc *Service, pairs [][2]string) []models.Word {
	t.Helper()
	words := make([]models.Word, 0, len(pairs))
	for _, pair := range pairs {
		w := svc.AddWord(pair[0], pair[1], nil)
		require.NotNil(t, w)
		svc.MarkLearning(w.ID)
		words = append(words, *w)
	}
	return words
}

func TestChallengeLifecycle(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	addLearningWords(t, svc, [][2]string{{"alma", "りんご"}, {"kutya", "犬"}})

	assert.Equal(t, ChallengeNotStarted, svc.ChallengeState())

	frozen := svc.StartChallenge()
	require.Len(t, frozen, 2)
	assert.Equal(t, ChallengeInProgress, svc.ChallengeState())

	first, ok := svc.ChallengeWord()
	require.True(t, ok)
	assert.Equal(t, frozen[0].ID, first.ID)

	svc.AnswerChallenge(true)
	second, ok := svc.ChallengeWord()
	require.True(t, ok)
	assert.Equal(t, frozen[1].ID, second.ID)

	svc.AnswerChallenge(false)
	assert.Equal(t, ChallengeFinished, svc.ChallengeState())

	correct, incorrect := svc.ChallengeScore()
	assert.Equal(t, 1, correct)
	assert.Equal(t, 1, incorrect)

	_, ok = svc.ChallengeWord()
	assert.False(t, ok)

	svc.Flush()
	cp, err := store.LoadChallengeCheckpoint("u1")
	require.NoError(t, err)
	assert.Nil(t, cp, "checkpoint must be discarded when the run finishes")
}

func TestChallengeCorrectLeavesProgressUntouched(t *testing.T) {
	svc := newTestService(newFakeStore())
	words := addLearningWords(t, svc, [][2]string{{"ház", "家"}})

	// Give the word a real schedule before the challenge.
	svc.SubmitAnswer(words[0].ID, true)
	svc.SubmitAnswer(words[0].ID, true)
	before, _ := svc.GetProgress(words[0].ID)
	require.Equal(t, 6, before.Interval)

	svc.StartChallenge()
	svc.AnswerChallenge(true)

	after, _ := svc.GetProgress(words[0].ID)
	assert.Equal(t, before, after, "challenge success must not advance scheduling")
}

func TestChallengeIncorrectHardResets(t *testing.T) {
	svc := newTestService(newFakeStore())
	words := addLearningWords(t, svc, [][2]string{{"víz", "水"}})
	id := words[0].ID

	// Build up interval 40 by hand to mirror a long-scheduled word.
	p, _ := svc.GetProgress(id)
	p.Interval = 40
	p.Repetitions = 5
	p.Easiness = 2.1
	p.NextReviewDate = testNow.AddDate(0, 0, 40)
	svc.progress[id] = p

	svc.StartChallenge()
	svc.AnswerChallenge(false)

	after, _ := svc.GetProgress(id)
	assert.Equal(t, 0, after.Interval)
	assert.Equal(t, 0, after.Repetitions)
	assert.Equal(t, testNow, after.NextReviewDate)
	require.NotNil(t, after.LastCorrect)
	assert.False(t, *after.LastCorrect)
	// The challenge reset leaves easiness alone.
	assert.InDelta(t, 2.1, after.Easiness, 1e-9)
}

func TestChallengeResume(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	addLearningWords(t, svc, [][2]string{{"egy", "一"}, {"kettő", "二"}, {"három", "三"}})

	frozen := svc.StartChallenge()
	require.Len(t, frozen, 3)
	svc.AnswerChallenge(true)
	svc.Flush()

	// A new service over the same store stands in for a restarted process.
	svc2 := newTestService(store)
	require.NoError(t, svc2.Load())

	assert.Equal(t, ChallengeNotStarted, svc2.ChallengeState())
	require.True(t, svc2.CanResumeChallenge())
	require.True(t, svc2.ResumeChallenge())
	assert.Equal(t, ChallengeInProgress, svc2.ChallengeState())

	correct, incorrect := svc2.ChallengeScore()
	assert.Equal(t, 1, correct)
	assert.Equal(t, 0, incorrect)

	word, ok := svc2.ChallengeWord()
	require.True(t, ok)
	assert.Equal(t, frozen[1].ID, word.ID)
}

func TestChallengeSkipsDeletedWords(t *testing.T) {
	svc := newTestService(newFakeStore())
	addLearningWords(t, svc, [][2]string{{"tanár", "先生"}, {"tanuló", "学生"}})

	frozen := svc.StartChallenge()
	require.Len(t, frozen, 2)

	svc.DeleteWord(frozen[0].ID)

	word, ok := svc.ChallengeWord()
	require.True(t, ok)
	assert.Equal(t, frozen[1].ID, word.ID)

	svc.AnswerChallenge(true)
	assert.Equal(t, ChallengeFinished, svc.ChallengeState())
}

func TestStartChallengeWithNoLearningWords(t *testing.T) {
	svc := newTestService(newFakeStore())
	words := svc.StartChallenge()
	assert.Empty(t, words)
	assert.Equal(t, ChallengeFinished, svc.ChallengeState())
	assert.False(t, svc.CanResumeChallenge())
}

func TestAnswerChallengeWithoutRunIsNoOp(t *testing.T) {
	svc := newTestService(newFakeStore())
	svc.AnswerChallenge(true)
	correct, incorrect := svc.ChallengeScore()
	assert.Equal(t, 0, correct)
	assert.Equal(t, 0, incorrect)
}
