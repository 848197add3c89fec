package wordbank

import "github.com/example/vocabtrainer/pkg/models"

// Store is the durable persistence boundary for a learner's catalog and
// progress. The service treats writes as fire-and-forget: a failed write is
// logged, never rolled back and never retried here. Retry policy, if any,
// belongs to the implementation.
type Store interface {
	// LoadCatalogAndProgress returns every word and progress record stored
	// for the learner.
	LoadCatalogAndProgress(userID string) ([]models.Word, []models.WordProgress, error)
	// SaveItem upserts a word together with its progress record.
	SaveItem(userID string, word models.Word, progress models.WordProgress) error
	// DeleteItem removes a word and its progress record in one transaction.
	DeleteItem(userID string, wordID string) error

	SaveChallengeCheckpoint(userID string, cp models.ChallengeCheckpoint) error
	// LoadChallengeCheckpoint returns nil when no checkpoint exists.
	LoadChallengeCheckpoint(userID string) (*models.ChallengeCheckpoint, error)
	DeleteChallengeCheckpoint(userID string) error

	// LoadSettings returns nil when the learner has no stored settings.
	LoadSettings(userID string) (*models.UserSettings, error)
	SaveSettings(userID string, settings models.UserSettings) error
}
