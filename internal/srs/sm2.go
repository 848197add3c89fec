package srs

import (
	"math"
	"time"

	"github.com/example/vocabtrainer/pkg/models"
)

// Algorithm constants shared by the whole scheduler.
const (
	// InitialEasiness is the EF every new word starts with
	InitialEasiness = 2.5
	// MinEasiness is the floor the EF recurrence is clamped to
	MinEasiness = 1.3
	// MasteredInterval is the interval assigned by an explicit mark-mastered override
	MasteredInterval = 365
	// MaxEasiness is assigned by an explicit mark-mastered override
	MaxEasiness = 5.0

	qualityCorrect   = 5
	qualityIncorrect = 1
)

// SM2 implements the two-level variant of the SuperMemo-2 algorithm: answers
// are plain correct/incorrect, mapped to quality 5 and 1.
type SM2 struct {
	// Quality at or above this value counts as a successful review
	PassThreshold int
	// Fixed intervals in days for the first successful reviews
	LearningIntervals []int
	// Interval in days at which a word is promoted to Mastered
	MasteryInterval int
}

// NewSM2 creates an SM2 instance with the default settings
func NewSM2() *SM2 {
	return &SM2{
		PassThreshold:     3,
		LearningIntervals: []int{1, 6},
		MasteryInterval:   60,
	}
}

// Apply runs one review outcome through the algorithm and returns the updated
// record. The caller persists it; the input is not modified.
func (sm *SM2) Apply(p models.WordProgress, correct bool, now time.Time) models.WordProgress {
	quality := qualityIncorrect
	if correct {
		quality = qualityCorrect
	}

	if quality >= sm.PassThreshold {
		t := true
		p.LastCorrect = &t
		if p.Repetitions < len(sm.LearningIntervals) {
			p.Interval = sm.LearningIntervals[p.Repetitions]
		} else {
			// Interval grows on the easiness value from before this review;
			// the EF update below only affects the next one.
			p.Interval = int(math.Ceil(float64(p.Interval) * p.Easiness))
		}
		p.Repetitions++
		p.Status = models.StatusLearning
	} else {
		f := false
		p.LastCorrect = &f
		p.Repetitions = 0
		p.Interval = 0
		p.Status = models.StatusLearning
	}

	// Standard SM-2 easiness recurrence, applied on both branches.
	p.Easiness = math.Max(MinEasiness, p.Easiness+0.1-float64(5-quality)*(0.08+float64(5-quality)*0.02))

	p.NextReviewDate = now.AddDate(0, 0, p.Interval)

	// Mastery is decided after the interval is recomputed.
	if p.Interval >= sm.MasteryInterval {
		p.Status = models.StatusMastered
	}
	return p
}

// ResetProgress is the review-challenge failure path: the word is forced
// straight back into the due queue. Unlike an incorrect answer in a normal
// quiz, easiness and status are left untouched.
func ResetProgress(p models.WordProgress, now time.Time) models.WordProgress {
	f := false
	p.LastCorrect = &f
	p.Repetitions = 0
	p.Interval = 0
	p.NextReviewDate = now
	return p
}

// MarkMastered forces a word into Mastered with a year-long interval,
// bypassing the normal progression.
func MarkMastered(p models.WordProgress, now time.Time) models.WordProgress {
	p.Status = models.StatusMastered
	p.Interval = MasteredInterval
	p.Easiness = MaxEasiness
	p.NextReviewDate = now.AddDate(0, 0, p.Interval)
	return p
}

// MarkLearning demotes a word back to Learning and makes it due immediately.
func MarkLearning(p models.WordProgress, now time.Time) models.WordProgress {
	p.Status = models.StatusLearning
	p.Interval = 0
	p.Repetitions = 0
	p.Easiness = math.Max(InitialEasiness, p.Easiness-0.2)
	p.NextReviewDate = now
	return p
}

// Normalize clamps a record loaded from storage back into valid ranges, so a
// single corrupted record does not block the whole catalog from loading.
func Normalize(p models.WordProgress, now time.Time) models.WordProgress {
	if math.IsNaN(p.Easiness) || p.Easiness < MinEasiness {
		p.Easiness = MinEasiness
	}
	if p.Interval < 0 {
		p.Interval = 0
	}
	if p.Repetitions < 0 {
		p.Repetitions = 0
	}
	switch p.Status {
	case models.StatusNew, models.StatusLearning, models.StatusMastered:
	default:
		p.Status = models.StatusNew
	}
	if p.NextReviewDate.IsZero() {
		p.NextReviewDate = now
	}
	return p
}
