package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vocabtrainer/internal/wordbank"
	"github.com/example/vocabtrainer/pkg/models"
)

// nopStore satisfies wordbank.Store for import tests; nothing is persisted.
type nopStore struct{}

func (nopStore) LoadCatalogAndProgress(string) ([]models.Word, []models.WordProgress, error) {
	return nil, nil, nil
}
func (nopStore) SaveItem(string, models.Word, models.WordProgress) error     { return nil }
func (nopStore) DeleteItem(string, string) error                             { return nil }
func (nopStore) SaveChallengeCheckpoint(string, models.ChallengeCheckpoint) error { return nil }
func (nopStore) LoadChallengeCheckpoint(string) (*models.ChallengeCheckpoint, error) {
	return nil, nil
}
func (nopStore) DeleteChallengeCheckpoint(string) error                 { return nil }
func (nopStore) LoadSettings(string) (*models.UserSettings, error)      { return nil, nil }
func (nopStore) SaveSettings(string, models.UserSettings) error         { return nil }

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportFromCSV(t *testing.T) {
	csv := "source,translation,example,example_translation,context\n" +
		"szia,こんにちは,Szia! Hogy vagy?,こんにちは！元気？,greetings\n" +
		"köszönöm,ありがとう,,,\n" +
		"SZIA,hello again,,,\n" +
		",orphan,,,\n"
	path := writeTempCSV(t, csv)

	bank := wordbank.NewService(nopStore{}, "test")
	config := DefaultImportConfig()
	config.FilePath = path

	result, err := ImportWords(config, bank)
	require.NoError(t, err)
	bank.Flush()

	assert.Equal(t, 4, result.TotalProcessed)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Errors, 1)

	words := bank.Words()
	require.Len(t, words, 2)

	var szia models.Word
	for _, w := range words {
		if w.SourceText == "szia" {
			szia = w
		}
	}
	require.NotEmpty(t, szia.ID)
	assert.Equal(t, "こんにちは", szia.TargetText)
	assert.Equal(t, "greetings", szia.Context)
	require.NotNil(t, szia.Example)
	assert.Equal(t, "Szia! Hogy vagy?", szia.Example.Sentence)
	assert.Equal(t, "こんにちは！元気？", szia.Example.Translation)

	// Every imported word gets a progress record at status New.
	for _, w := range words {
		p, ok := bank.GetProgress(w.ID)
		require.True(t, ok)
		assert.Equal(t, models.StatusNew, p.Status)
	}
}

func TestImportMissingFile(t *testing.T) {
	bank := wordbank.NewService(nopStore{}, "test")
	config := DefaultImportConfig()
	config.FilePath = filepath.Join(t.TempDir(), "missing.xlsx")

	_, err := ImportWords(config, bank)
	assert.Error(t, err)
}
