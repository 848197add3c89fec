package models

// UserSettings holds per-learner preferences
type UserSettings struct {
	QuizSessionSize int `json:"quiz_session_size" db:"quiz_session_size"` // Number of due words per quiz session
}
