// Command article-analyzer extracts keywords and keyphrases from a text
// submission and flags near-duplicates against the submitting user's
// history window. Text is read from a file or stdin; the result is printed
// as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"article-analyzer/config"
	"article-analyzer/internal/classifier"
	"article-analyzer/internal/db"
	"article-analyzer/internal/models"
	"article-analyzer/internal/repositories"
	"article-analyzer/internal/services"
)

func main() {
	userID := flag.String("user", "anonymous", "identity whose history window is consulted")
	inputPath := flag.String("file", "", "read text from this file instead of stdin")
	noHistory := flag.Bool("no-history", false, "skip the history store entirely")
	flag.Parse()

	logger := log.New(os.Stderr, "[article-analyzer] ", log.LstdFlags)
	cfg := config.Load()

	text, err := readInput(*inputPath)
	if err != nil {
		logger.Fatalf("Failed to read input: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		logger.Fatal("No text provided")
	}

	// The classifier is loaded once and shared read-only; a missing model
	// degrades keyphrase extraction to empty results.
	var scorer services.PhraseScorer
	if model, err := classifier.Load(cfg.ModelPath); err != nil {
		logger.Printf("Keyphrase classifier unavailable: %v", err)
	} else {
		scorer = model
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var repo repositories.HistoryRepository
	var history []models.Article
	if !*noHistory {
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Printf("History store unavailable, continuing without it: %v", err)
		} else {
			repo = repositories.NewRedisHistoryRepository(client)
			defer repo.Close()
			history, err = repo.Recent(ctx, *userID, cfg.HistoryWindow)
			if err != nil {
				logger.Printf("Failed to read history window: %v", err)
				history = nil
			}
		}
	}

	service := services.NewAnalysisService(scorer, cfg.TopN, cfg.MinProbability, cfg.Similarity, logger)
	result := service.Analyze(text, history)

	// Persist the submission only after the similarity pass saw the prior
	// window.
	if repo != nil {
		if _, err := repo.Append(ctx, *userID, text); err != nil {
			logger.Printf("Failed to append submission to history: %v", err)
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		logger.Fatalf("Failed to encode result: %v", err)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
