package database

import (
	"fmt"

	"github.com/example/vocabtrainer/pkg/models"
)

// Store bundles the repositories into the persistence surface the word bank
// service consumes.
type Store struct {
	words     *WordRepository
	progress  *ProgressRepository
	challenge *ChallengeRepository
	settings  *SettingsRepository
}

// NewStore creates a store over the global database connection
func NewStore() *Store {
	return &Store{
		words:     NewWordRepository(),
		progress:  NewProgressRepository(),
		challenge: NewChallengeRepository(),
		settings:  NewSettingsRepository(),
	}
}

// LoadCatalogAndProgress returns every word and progress record stored for the learner
func (s *Store) LoadCatalogAndProgress(userID string) ([]models.Word, []models.WordProgress, error) {
	words, err := s.words.GetAllForUser(userID)
	if err != nil {
		return nil, nil, err
	}
	progress, err := s.progress.GetAllForUser(userID)
	if err != nil {
		return nil, nil, err
	}
	return words, progress, nil
}

// SaveItem upserts a word together with its progress record
func (s *Store) SaveItem(userID string, word models.Word, progress models.WordProgress) error {
	if err := s.words.Upsert(userID, word); err != nil {
		return err
	}
	return s.progress.Upsert(userID, progress)
}

// DeleteItem removes a word and its progress record in one transaction, so
// no orphan progress rows are left behind
func (s *Store) DeleteItem(userID string, wordID string) error {
	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	if _, err := tx.Exec("DELETE FROM word_progress WHERE user_id = $1 AND word_id = $2", userID, wordID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete word progress: %v", err)
	}
	if _, err := tx.Exec("DELETE FROM words WHERE user_id = $1 AND id = $2", userID, wordID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete word: %v", err)
	}
	return tx.Commit()
}

// SaveChallengeCheckpoint stores the learner's challenge checkpoint
func (s *Store) SaveChallengeCheckpoint(userID string, cp models.ChallengeCheckpoint) error {
	return s.challenge.Save(userID, cp)
}

// LoadChallengeCheckpoint returns the stored checkpoint, nil when none exists
func (s *Store) LoadChallengeCheckpoint(userID string) (*models.ChallengeCheckpoint, error) {
	return s.challenge.Get(userID)
}

// DeleteChallengeCheckpoint discards the stored checkpoint
func (s *Store) DeleteChallengeCheckpoint(userID string) error {
	return s.challenge.Delete(userID)
}

// LoadSettings returns the learner's stored preferences, nil when none exist
func (s *Store) LoadSettings(userID string) (*models.UserSettings, error) {
	return s.settings.Get(userID)
}

// SaveSettings stores the learner's preferences
func (s *Store) SaveSettings(userID string, settings models.UserSettings) error {
	return s.settings.Save(userID, settings)
}
