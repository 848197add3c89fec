package database

import (
	"database/sql"
	"fmt"

	"github.com/example/vocabtrainer/pkg/models"
)

// SettingsRepository handles database operations for learner preferences
type SettingsRepository struct{}

// NewSettingsRepository creates a new repository instance
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// Get returns the learner's settings, or nil when none are stored
func (r *SettingsRepository) Get(userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := DB.Get(&settings, "SELECT quiz_session_size FROM user_settings WHERE user_id = $1", userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user settings: %v", err)
	}
	return &settings, nil
}

// Save inserts or replaces the learner's settings
func (r *SettingsRepository) Save(userID string, settings models.UserSettings) error {
	query := `
		INSERT INTO user_settings (user_id, quiz_session_size)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			quiz_session_size = excluded.quiz_session_size,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := DB.Exec(query, userID, settings.QuizSessionSize)
	if err != nil {
		return fmt.Errorf("failed to save user settings: %v", err)
	}
	return nil
}
