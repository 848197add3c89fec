package database

import (
	"fmt"

	"github.com/example/vocabtrainer/pkg/models"
)

// ProgressRepository handles database operations for word progress records
type ProgressRepository struct{}

// NewProgressRepository creates a new repository instance
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{}
}

// GetAllForUser returns every progress record stored for the learner
func (r *ProgressRepository) GetAllForUser(userID string) ([]models.WordProgress, error) {
	var progress []models.WordProgress
	query := `
		SELECT word_id, status, easiness, interval, repetitions, next_review_date, last_correct
		FROM word_progress
		WHERE user_id = $1
		ORDER BY next_review_date ASC
	`
	if err := DB.Select(&progress, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get word progress: %v", err)
	}
	return progress, nil
}

// Upsert inserts or replaces a progress record
func (r *ProgressRepository) Upsert(userID string, p models.WordProgress) error {
	query := `
		INSERT INTO word_progress (user_id, word_id, status, easiness, interval, repetitions, next_review_date, last_correct)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, word_id) DO UPDATE SET
			status = excluded.status,
			easiness = excluded.easiness,
			interval = excluded.interval,
			repetitions = excluded.repetitions,
			next_review_date = excluded.next_review_date,
			last_correct = excluded.last_correct,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := DB.Exec(query, userID, p.WordID, string(p.Status), p.Easiness, p.Interval, p.Repetitions, p.NextReviewDate, p.LastCorrect)
	if err != nil {
		return fmt.Errorf("failed to upsert word progress: %v", err)
	}
	return nil
}
