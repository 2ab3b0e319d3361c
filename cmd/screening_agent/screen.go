package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/crew-screening/internal/db"
	"github.com/jonathan/crew-screening/internal/documents"
	"github.com/jonathan/crew-screening/internal/logger"
	"github.com/jonathan/crew-screening/internal/screening"
	"github.com/jonathan/crew-screening/internal/search"
)

var screenConfigPath string

var screenCmd = &cobra.Command{
	Use:   "screen <application-id> [application-id...]",
	Short: "Screen one or more applications",
	Long:  `Run the screening pipeline for the given application IDs and print each outcome. Multiple IDs run as a batch with per-item failure isolation.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScreen,
}

func init() {
	screenCmd.Flags().StringVar(&screenConfigPath, "config", "", "Path to JSON config file (defaults to environment variables)")
	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(screenConfigPath)
	if err != nil {
		return err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(args))
	for _, raw := range args {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid application ID %q: %w", raw, err)
		}
		ids = append(ids, id)
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	var indexer screening.Indexer
	if cfg.SearchIndexURL != "" {
		indexer = search.NewHTTPIndexer(cfg.SearchIndexURL)
	}

	screener := screening.New(screening.Config{
		Store:            database,
		Documents:        database,
		Extractor:        documents.NewExtractor(),
		Indexer:          indexer,
		Logger:           log,
		BatchConcurrency: cfg.BatchConcurrency,
	})

	if len(ids) == 1 {
		score, err := screener.ScreenApplication(ctx, ids[0])
		if err != nil {
			return err
		}
		printScore(ids[0], score.Score, score.Confidence)
		return nil
	}

	result := screener.ScreenBatch(ctx, ids)
	for _, item := range result.Items {
		if item.Error != "" {
			fmt.Printf("%s  error: %s\n", item.ApplicationID, item.Error)
			continue
		}
		printScore(item.ApplicationID, item.Score.Score, item.Score.Confidence)
	}
	fmt.Printf("Done: %d successful, %d failed.\n", result.Successful, result.Failed)
	return nil
}

func printScore(id uuid.UUID, score, confidence int) {
	fmt.Printf("%s  score: %d  confidence: %d\n", id, score, confidence)
}
