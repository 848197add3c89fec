package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/vocabtrainer/pkg/models"
)

// ChallengeRepository handles database operations for review-challenge checkpoints
type ChallengeRepository struct{}

// NewChallengeRepository creates a new repository instance
func NewChallengeRepository() *ChallengeRepository {
	return &ChallengeRepository{}
}

type challengeRow struct {
	WordIDs        string `db:"word_ids"`
	CurrentIndex   int    `db:"current_index"`
	CorrectCount   int    `db:"correct_count"`
	IncorrectCount int    `db:"incorrect_count"`
}

// Get returns the learner's checkpoint, or nil when none is stored
func (r *ChallengeRepository) Get(userID string) (*models.ChallengeCheckpoint, error) {
	var row challengeRow
	query := `
		SELECT word_ids, current_index, correct_count, incorrect_count
		FROM challenge_sessions
		WHERE user_id = $1
	`
	err := DB.Get(&row, query, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge checkpoint: %v", err)
	}

	cp := &models.ChallengeCheckpoint{
		CurrentIndex:   row.CurrentIndex,
		CorrectCount:   row.CorrectCount,
		IncorrectCount: row.IncorrectCount,
	}
	if row.WordIDs != "" {
		cp.WordIDs = strings.Split(row.WordIDs, ",")
	}
	return cp, nil
}

// Save inserts or replaces the learner's checkpoint
func (r *ChallengeRepository) Save(userID string, cp models.ChallengeCheckpoint) error {
	query := `
		INSERT INTO challenge_sessions (user_id, word_ids, current_index, correct_count, incorrect_count)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			word_ids = excluded.word_ids,
			current_index = excluded.current_index,
			correct_count = excluded.correct_count,
			incorrect_count = excluded.incorrect_count,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := DB.Exec(query, userID, strings.Join(cp.WordIDs, ","), cp.CurrentIndex, cp.CorrectCount, cp.IncorrectCount)
	if err != nil {
		return fmt.Errorf("failed to save challenge checkpoint: %v", err)
	}
	return nil
}

// Delete removes the learner's checkpoint
func (r *ChallengeRepository) Delete(userID string) error {
	_, err := DB.Exec("DELETE FROM challenge_sessions WHERE user_id = $1", userID)
	if err != nil {
		return fmt.Errorf("failed to delete challenge checkpoint: %v", err)
	}
	return nil
}
