package srs

import (
	"math/rand"
	"sort"
	"time"

	"github.com/example/vocabtrainer/pkg/models"
)

// SelectDue returns the records due for review at now, oldest due date first,
// capped at limit. limit <= 0 means no cap. The due date ordering decides
// which words make the cut; callers shuffle the final word list before
// showing it to the learner.
func SelectDue(progress []models.WordProgress, now time.Time, limit int) []models.WordProgress {
	var due []models.WordProgress
	for _, p := range progress {
		if !p.NextReviewDate.After(now) {
			due = append(due, p)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		return due[i].NextReviewDate.Before(due[j].NextReviewDate)
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}

// SelectChallengeSet returns the records for every word currently in Learning
// status, regardless of due date. No limit, unlike SelectDue.
func SelectChallengeSet(progress []models.WordProgress) []models.WordProgress {
	var set []models.WordProgress
	for _, p := range progress {
		if p.Status == models.StatusLearning {
			set = append(set, p)
		}
	}
	return set
}

// ShuffleWords shuffles in place (Fisher-Yates).
func ShuffleWords(words []models.Word, rng *rand.Rand) {
	rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}
