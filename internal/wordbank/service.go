package wordbank

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/vocabtrainer/internal/srs"
	"github.com/example/vocabtrainer/pkg/models"
)

// DefaultQuizSessionSize is the number of due words per quiz session unless
// the learner has stored a different preference.
const DefaultQuizSessionSize = 10

// Service owns the in-memory word bank for a single learner and implements
// the scheduler operations over it. All operations are synchronous and the
// service holds its state exclusively between calls; only durable writes
// happen in the background.
type Service struct {
	userID string
	store  Store
	sm2    *srs.SM2
	rng    *rand.Rand
	now    func() time.Time

	words    map[string]models.Word
	progress map[string]models.WordProgress

	quizSessionSize int
	challenge       *ChallengeRun

	wg sync.WaitGroup
}

// NewService creates a service bound to one learner. Call Load before using it.
func NewService(store Store, userID string) *Service {
	return &Service{
		userID:          userID,
		store:           store,
		sm2:             srs.NewSM2(),
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
		now:             time.Now,
		words:           make(map[string]models.Word),
		progress:        make(map[string]models.WordProgress),
		quizSessionSize: DefaultQuizSessionSize,
	}
}

// Load pulls the learner's catalog and progress from the store. Records that
// fail the model invariants are normalized rather than rejected, words
// without a progress record get a fresh one, and seed words missing from the
// stored catalog are back-filled and persisted.
func (s *Service) Load() error {
	words, progress, err := s.store.LoadCatalogAndProgress(s.userID)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %v", err)
	}
	now := s.now()

	s.words = make(map[string]models.Word, len(words))
	s.progress = make(map[string]models.WordProgress, len(progress))
	for _, w := range words {
		s.words[w.ID] = w
	}
	for _, p := range progress {
		if _, ok := s.words[p.WordID]; !ok {
			// Orphaned record, its word is gone.
			continue
		}
		s.progress[p.WordID] = srs.Normalize(p, now)
	}
	for id, w := range s.words {
		if _, ok := s.progress[id]; !ok {
			p := s.newProgress(id, now)
			s.progress[id] = p
			s.persistItem(w, p)
		}
	}

	s.ensureSeedWords(now)

	settings, err := s.store.LoadSettings(s.userID)
	if err != nil {
		log.Printf("Failed to load settings for user %s: %v", s.userID, err)
	} else if settings != nil && settings.QuizSessionSize > 0 {
		s.quizSessionSize = settings.QuizSessionSize
	}
	return nil
}

// GetDueWords returns up to limit due words in randomized order. The due-date
// ordering decides which words are chosen, not the order the learner sees.
// limit <= 0 falls back to the learner's quiz session size.
func (s *Service) GetDueWords(limit int) []models.Word {
	if limit <= 0 {
		limit = s.quizSessionSize
	}
	due := srs.SelectDue(s.progressList(), s.now(), limit)
	words := make([]models.Word, 0, len(due))
	for _, p := range due {
		if w, ok := s.words[p.WordID]; ok {
			words = append(words, w)
		}
	}
	srs.ShuffleWords(words, s.rng)
	return words
}

// DueCount returns how many words are currently due, without a cap.
func (s *Service) DueCount() int {
	return len(srs.SelectDue(s.progressList(), s.now(), 0))
}

// BuildQuizSession composes an ordered quiz session from due words.
func (s *Service) BuildQuizSession(due []models.Word) []srs.QuizItem {
	return srs.BuildSession(due, s.rng)
}

// SubmitAnswer applies a quiz outcome to the word's progress record and
// issues the durable write. Unknown ids are a no-op so the presentation
// layer can safely retry stale references.
func (s *Service) SubmitAnswer(wordID string, correct bool) {
	p, ok := s.progress[wordID]
	if !ok {
		return
	}
	p = s.sm2.Apply(p, correct, s.now())
	s.progress[wordID] = p
	s.persistItem(s.words[wordID], p)
}

// GetStats tallies the word bank by status.
func (s *Service) GetStats() models.Stats {
	var stats models.Stats
	for _, p := range s.progress {
		switch p.Status {
		case models.StatusNew:
			stats.NewCount++
		case models.StatusLearning:
			stats.LearningCount++
		case models.StatusMastered:
			stats.MasteredCount++
		}
	}
	return stats
}

// GetChallengeSet returns every word currently in Learning status, shuffled.
func (s *Service) GetChallengeSet() []models.Word {
	set := srs.SelectChallengeSet(s.progressList())
	words := make([]models.Word, 0, len(set))
	for _, p := range set {
		if w, ok := s.words[p.WordID]; ok {
			words = append(words, w)
		}
	}
	srs.ShuffleWords(words, s.rng)
	return words
}

// ResetOnChallengeFailure hard-resets a word's schedule so it lands back in
// the immediate due queue. Easiness is deliberately left untouched, unlike
// the normal incorrect path.
func (s *Service) ResetOnChallengeFailure(wordID string) {
	p, ok := s.progress[wordID]
	if !ok {
		return
	}
	p = srs.ResetProgress(p, s.now())
	s.progress[wordID] = p
	s.persistItem(s.words[wordID], p)
}

// MarkMastered forces a word into Mastered. Idempotent and unconditional.
func (s *Service) MarkMastered(wordID string) {
	p, ok := s.progress[wordID]
	if !ok {
		return
	}
	p = srs.MarkMastered(p, s.now())
	s.progress[wordID] = p
	s.persistItem(s.words[wordID], p)
}

// MarkLearning demotes a word back to Learning and makes it due immediately.
func (s *Service) MarkLearning(wordID string) {
	p, ok := s.progress[wordID]
	if !ok {
		return
	}
	p = srs.MarkLearning(p, s.now())
	s.progress[wordID] = p
	s.persistItem(s.words[wordID], p)
}

// AddWord creates a new word with a fresh progress record. Returns nil when
// a word with the same source text (case-insensitive) already exists.
func (s *Service) AddWord(sourceText, targetText string, example *models.Example) *models.Word {
	for _, w := range s.words {
		if strings.EqualFold(w.SourceText, sourceText) {
			return nil
		}
	}
	word := models.Word{
		ID:         uuid.NewString(),
		SourceText: sourceText,
		TargetText: targetText,
		Example:    example,
	}
	progress := s.newProgress(word.ID, s.now())
	s.words[word.ID] = word
	s.progress[word.ID] = progress
	s.persistItem(word, progress)
	return &word
}

// UpdateWord replaces a word's fields, keeping its progress. Unknown ids are
// a no-op.
func (s *Service) UpdateWord(word models.Word) {
	if _, ok := s.words[word.ID]; !ok {
		return
	}
	s.words[word.ID] = word
	s.persistItem(word, s.progress[word.ID])
}

// DeleteWord removes a word and its progress record together, so no orphan
// records remain.
func (s *Service) DeleteWord(wordID string) {
	if _, ok := s.words[wordID]; !ok {
		return
	}
	delete(s.words, wordID)
	delete(s.progress, wordID)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.store.DeleteItem(s.userID, wordID); err != nil {
			log.Printf("Failed to delete word %s: %v", wordID, err)
		}
	}()
}

// GetWordByID looks a word up by id.
func (s *Service) GetWordByID(wordID string) (models.Word, bool) {
	w, ok := s.words[wordID]
	return w, ok
}

// GetProgress returns the progress record for a word.
func (s *Service) GetProgress(wordID string) (models.WordProgress, bool) {
	p, ok := s.progress[wordID]
	return p, ok
}

// Words returns the full catalog sorted by source text.
func (s *Service) Words() []models.Word {
	words := make([]models.Word, 0, len(s.words))
	for _, w := range s.words {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		return words[i].SourceText < words[j].SourceText
	})
	return words
}

// QuizSessionSize returns the learner's session size preference.
func (s *Service) QuizSessionSize() int {
	return s.quizSessionSize
}

// SetQuizSessionSize stores a new session size preference. Values below 1
// are ignored.
func (s *Service) SetQuizSessionSize(size int) {
	if size < 1 {
		return
	}
	s.quizSessionSize = size
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.store.SaveSettings(s.userID, models.UserSettings{QuizSessionSize: size}); err != nil {
			log.Printf("Failed to save settings for user %s: %v", s.userID, err)
		}
	}()
}

// Flush waits for outstanding background writes. Meant for shutdown and tests.
func (s *Service) Flush() {
	s.wg.Wait()
}

func (s *Service) newProgress(wordID string, now time.Time) models.WordProgress {
	return models.WordProgress{
		WordID:         wordID,
		Status:         models.StatusNew,
		Easiness:       srs.InitialEasiness,
		Interval:       0,
		Repetitions:    0,
		NextReviewDate: now,
	}
}

func (s *Service) progressList() []models.WordProgress {
	list := make([]models.WordProgress, 0, len(s.progress))
	for _, p := range s.progress {
		list = append(list, p)
	}
	return list
}

// persistItem issues the durable write without blocking the caller. The
// in-memory state stays authoritative for the session even when the write
// fails.
func (s *Service) persistItem(word models.Word, progress models.WordProgress) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.store.SaveItem(s.userID, word, progress); err != nil {
			log.Printf("Failed to save word %s: %v", word.ID, err)
		}
	}()
}
