// Package main provides the entry point for the crew screening service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screening_agent",
	Short: "Candidate-job fit screening service",
	Long:  "Screening agent scores crew candidates against job postings: entity extraction from resumes, tiered skill matching and weighted fit scoring, exposed over a REST API and a CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
