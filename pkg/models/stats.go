package models

// Stats is the per-status tally of a learner's word bank.
type Stats struct {
	NewCount      int `json:"new_count"`
	LearningCount int `json:"learning_count"`
	MasteredCount int `json:"mastered_count"`
}
