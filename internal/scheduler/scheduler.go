package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/vocabtrainer/internal/wordbank"
)

// Default reminder window: no reminders outside waking hours.
const (
	DefaultReminderStartHour = 8
	DefaultReminderEndHour   = 22
)

// Notifier delivers due-review reminders to the learner
type Notifier interface {
	SendDueReminder(userID string, count int) error
}

// LogNotifier writes reminders to the process log. Used when no richer
// delivery channel is wired in.
type LogNotifier struct{}

// SendDueReminder logs the reminder
func (LogNotifier) SendDueReminder(userID string, count int) error {
	log.Printf("User %s has %d words due for review", userID, count)
	return nil
}

// Scheduler manages the periodic due-review reminder job
type Scheduler struct {
	scheduler *gocron.Scheduler
	bank      *wordbank.Service
	userID    string
	notifier  Notifier
}

// New creates a new scheduler instance
func New(bank *wordbank.Service, userID string, notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		bank:      bank,
		userID:    userID,
		notifier:  notifier,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndRemind)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndRemind sends a reminder when words are due and the local hour is
// inside the configured window
func (s *Scheduler) checkAndRemind() {
	currentHour := time.Now().Hour()

	startHour := DefaultReminderStartHour
	endHour := DefaultReminderEndHour

	if startHourStr := os.Getenv("REMINDER_START_HOUR"); startHourStr != "" {
		if h, err := strconv.Atoi(startHourStr); err == nil && h >= 0 && h <= 23 {
			startHour = h
		}
	}
	if endHourStr := os.Getenv("REMINDER_END_HOUR"); endHourStr != "" {
		if h, err := strconv.Atoi(endHourStr); err == nil && h >= 0 && h <= 23 {
			endHour = h
		}
	}

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside reminder hours (%d-%d), skipping reminder",
			currentHour, startHour, endHour)
		return
	}

	count := s.bank.DueCount()
	if count == 0 {
		return
	}
	if err := s.notifier.SendDueReminder(s.userID, count); err != nil {
		log.Printf("Error sending reminder to user %s: %v", s.userID, err)
	}
}

// RunManualCheck forces a reminder check outside the schedule
func (s *Scheduler) RunManualCheck() error {
	count := s.bank.DueCount()
	if count == 0 {
		return nil
	}
	return s.notifier.SendDueReminder(s.userID, count)
}
