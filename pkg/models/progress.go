package models

import "time"

// WordStatus is the learning state of a word.
type WordStatus string

const (
	StatusNew      WordStatus = "New"
	StatusLearning WordStatus = "Learning"
	StatusMastered WordStatus = "Mastered"
)

// WordProgress tracks a learner's progress with a specific word using the SM-2 algorithm.
// Exactly one record exists per word.
type WordProgress struct {
	WordID         string     `json:"word_id" db:"word_id"`
	Status         WordStatus `json:"status" db:"status"`
	Easiness       float64    `json:"easiness" db:"easiness"`       // SM-2 EF parameter, never below 1.3
	Interval       int        `json:"interval" db:"interval"`       // Current interval in days
	Repetitions    int        `json:"repetitions" db:"repetitions"` // Consecutive successful reviews since last reset
	NextReviewDate time.Time  `json:"next_review_date" db:"next_review_date"`
	LastCorrect    *bool      `json:"last_correct" db:"last_correct"` // nil until the first review
}
