package wordbank

import (
	"log"

	"github.com/example/vocabtrainer/pkg/models"
)

// ChallengeState tracks where a review-challenge run is in its lifecycle.
type ChallengeState int

const (
	ChallengeNotStarted ChallengeState = iota
	ChallengeInProgress
	ChallengeFinished
)

// ChallengeRun is one pass over the full Learning working set. The word order
// is frozen at start so an interrupted run can continue from its checkpoint.
type ChallengeRun struct {
	state     ChallengeState
	wordIDs   []string
	index     int
	correct   int
	incorrect int
}

// ChallengeState returns the state of the current run, ChallengeNotStarted
// when none exists.
func (s *Service) ChallengeState() ChallengeState {
	if s.challenge == nil {
		return ChallengeNotStarted
	}
	return s.challenge.state
}

// ChallengeScore returns the correct and incorrect counts of the current run.
func (s *Service) ChallengeScore() (correct, incorrect int) {
	if s.challenge == nil {
		return 0, 0
	}
	return s.challenge.correct, s.challenge.incorrect
}

// StartChallenge freezes the current Learning set into a new run, replacing
// any earlier checkpoint, and returns the words in their frozen order.
func (s *Service) StartChallenge() []models.Word {
	words := s.GetChallengeSet()
	ids := make([]string, len(words))
	for i, w := range words {
		ids[i] = w.ID
	}
	s.challenge = &ChallengeRun{state: ChallengeInProgress, wordIDs: ids}
	if len(ids) == 0 {
		s.finishChallenge()
		return words
	}
	s.persistCheckpoint()
	return words
}

// CanResumeChallenge reports whether a checkpoint from an interrupted run
// exists, i.e. the run is resumable.
func (s *Service) CanResumeChallenge() bool {
	if s.challenge != nil && s.challenge.state == ChallengeInProgress {
		return true
	}
	cp, err := s.store.LoadChallengeCheckpoint(s.userID)
	if err != nil {
		log.Printf("Failed to load challenge checkpoint for user %s: %v", s.userID, err)
		return false
	}
	return cp != nil && cp.CurrentIndex < len(cp.WordIDs)
}

// ResumeChallenge continues an interrupted run from its checkpoint. Returns
// false when there is nothing to resume.
func (s *Service) ResumeChallenge() bool {
	cp, err := s.store.LoadChallengeCheckpoint(s.userID)
	if err != nil {
		log.Printf("Failed to load challenge checkpoint for user %s: %v", s.userID, err)
		return false
	}
	if cp == nil || cp.CurrentIndex >= len(cp.WordIDs) {
		return false
	}
	s.challenge = &ChallengeRun{
		state:     ChallengeInProgress,
		wordIDs:   cp.WordIDs,
		index:     cp.CurrentIndex,
		correct:   cp.CorrectCount,
		incorrect: cp.IncorrectCount,
	}
	return true
}

// ChallengeWord returns the word under review, skipping ids deleted since
// the run was frozen. The second result is false once the run is over.
func (s *Service) ChallengeWord() (models.Word, bool) {
	c := s.challenge
	if c == nil || c.state != ChallengeInProgress {
		return models.Word{}, false
	}
	for c.index < len(c.wordIDs) {
		if w, ok := s.words[c.wordIDs[c.index]]; ok {
			return w, true
		}
		c.index++
	}
	s.finishChallenge()
	return models.Word{}, false
}

// AnswerChallenge records the outcome for the current word and advances the
// run. A correct answer deliberately leaves scheduling untouched so the word
// is not double-credited; an incorrect answer forces it straight back into
// the due queue.
func (s *Service) AnswerChallenge(correct bool) {
	c := s.challenge
	if c == nil || c.state != ChallengeInProgress {
		return
	}
	word, ok := s.ChallengeWord()
	if !ok {
		return
	}
	if correct {
		c.correct++
	} else {
		c.incorrect++
		s.ResetOnChallengeFailure(word.ID)
	}
	c.index++
	if c.index >= len(c.wordIDs) {
		s.finishChallenge()
		return
	}
	s.persistCheckpoint()
}

func (s *Service) finishChallenge() {
	if s.challenge == nil {
		return
	}
	s.challenge.state = ChallengeFinished
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.store.DeleteChallengeCheckpoint(s.userID); err != nil {
			log.Printf("Failed to delete challenge checkpoint for user %s: %v", s.userID, err)
		}
	}()
}

func (s *Service) persistCheckpoint() {
	c := s.challenge
	cp := models.ChallengeCheckpoint{
		WordIDs:        append([]string(nil), c.wordIDs...),
		CurrentIndex:   c.index,
		CorrectCount:   c.correct,
		IncorrectCount: c.incorrect,
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.store.SaveChallengeCheckpoint(s.userID, cp); err != nil {
			log.Printf("Failed to save challenge checkpoint for user %s: %v", s.userID, err)
		}
	}()
}
