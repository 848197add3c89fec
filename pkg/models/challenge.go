package models

// ChallengeCheckpoint is a resumable snapshot of a review-challenge run.
// The word order is frozen when the run starts; the checkpoint is deleted
// once the run finishes.
type ChallengeCheckpoint struct {
	WordIDs        []string `json:"word_ids"`
	CurrentIndex   int      `json:"current_index"`
	CorrectCount   int      `json:"correct_count"`
	IncorrectCount int      `json:"incorrect_count"`
}
