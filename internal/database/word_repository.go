package database

import (
	"database/sql"
	"fmt"

	"github.com/example/vocabtrainer/pkg/models"
)

// WordRepository handles database operations for the vocabulary catalog
type WordRepository struct{}

// NewWordRepository creates a new repository instance
func NewWordRepository() *WordRepository {
	return &WordRepository{}
}

// wordRow flattens the optional example pair into nullable columns.
type wordRow struct {
	ID                 string         `db:"id"`
	SourceText         string         `db:"source_text"`
	TargetText         string         `db:"target_text"`
	Context            string         `db:"context"`
	ExampleSentence    sql.NullString `db:"example_sentence"`
	ExampleTranslation sql.NullString `db:"example_translation"`
}

func (r wordRow) toModel() models.Word {
	word := models.Word{
		ID:         r.ID,
		SourceText: r.SourceText,
		TargetText: r.TargetText,
		Context:    r.Context,
	}
	if r.ExampleSentence.Valid && r.ExampleSentence.String != "" {
		word.Example = &models.Example{
			Sentence:    r.ExampleSentence.String,
			Translation: r.ExampleTranslation.String,
		}
	}
	return word
}

// GetAllForUser returns the learner's full catalog
func (r *WordRepository) GetAllForUser(userID string) ([]models.Word, error) {
	var rows []wordRow
	query := `
		SELECT id, source_text, target_text, context, example_sentence, example_translation
		FROM words
		WHERE user_id = $1
		ORDER BY source_text
	`
	if err := DB.Select(&rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get words: %v", err)
	}

	words := make([]models.Word, 0, len(rows))
	for _, row := range rows {
		words = append(words, row.toModel())
	}
	return words, nil
}

// Upsert inserts or replaces a word
func (r *WordRepository) Upsert(userID string, word models.Word) error {
	var sentence, translation sql.NullString
	if word.Example != nil {
		sentence = sql.NullString{String: word.Example.Sentence, Valid: true}
		translation = sql.NullString{String: word.Example.Translation, Valid: true}
	}

	query := `
		INSERT INTO words (user_id, id, source_text, target_text, context, example_sentence, example_translation)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, id) DO UPDATE SET
			source_text = excluded.source_text,
			target_text = excluded.target_text,
			context = excluded.context,
			example_sentence = excluded.example_sentence,
			example_translation = excluded.example_translation,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := DB.Exec(query, userID, word.ID, word.SourceText, word.TargetText, word.Context, sentence, translation)
	if err != nil {
		return fmt.Errorf("failed to upsert word: %v", err)
	}
	return nil
}
