// Package main provides the entry point for the NewsSense CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "newssense",
	Short: "Financial news relevance engine",
	Long:  "NewsSense answers financial questions by ranking a pool of news articles against the query and assembling a grounded context for answer generation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
