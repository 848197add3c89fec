package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/vocabtrainer/internal/database"
	"github.com/example/vocabtrainer/internal/excel"
	"github.com/example/vocabtrainer/internal/scheduler"
	"github.com/example/vocabtrainer/internal/wordbank"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	importPath := flag.String("import", "", "import words from an Excel or CSV file and exit")
	flag.Parse()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	userID := os.Getenv("USER_ID")
	if userID == "" {
		userID = "local"
	}

	bank := wordbank.NewService(database.NewStore(), userID)
	if err := bank.Load(); err != nil {
		log.Fatalf("Failed to load word bank: %v", err)
	}

	if *importPath != "" {
		config := excel.DefaultImportConfig()
		config.FilePath = *importPath
		result, err := excel.ImportWords(config, bank)
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		bank.Flush()
		log.Printf("Import finished: %d processed, %d created, %d skipped",
			result.TotalProcessed, result.Created, result.Skipped)
		for _, e := range result.Errors {
			log.Printf("Import warning: %s", e)
		}
		return
	}

	stats := bank.GetStats()
	log.Printf("Word bank loaded for user %s: %d new, %d learning, %d mastered",
		userID, stats.NewCount, stats.LearningCount, stats.MasteredCount)

	sched := scheduler.New(bank, userID, scheduler.LogNotifier{})
	sched.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("Scheduler started. Press Ctrl+C to stop.")
	sig := <-sigChan
	log.Printf("Received signal: %v", sig)

	sched.Stop()
	bank.Flush()
	log.Println("Shutdown complete")
}
