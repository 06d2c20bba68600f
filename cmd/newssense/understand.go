package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/newssense/internal/gazetteer"
	"github.com/jonathan/newssense/internal/query"
)

var understandCommand = &cobra.Command{
	Use:   "understand [question]",
	Short: "Show how a question is processed, without ranking articles",
	Long:  "Prints the processed query as JSON: cleaned text, extracted entities, classified intent, phrases and weighted key terms.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runUnderstandCmd,
}

var understandGazetteer string

func init() {
	understandCommand.Flags().StringVar(&understandGazetteer, "gazetteer", "", "Path to gazetteer JSON file (defaults to the embedded tables)")
	rootCmd.AddCommand(understandCommand)
}

func runUnderstandCmd(_ *cobra.Command, args []string) error {
	gaz := gazetteer.Default()
	if understandGazetteer != "" {
		var err error
		gaz, err = gazetteer.LoadFile(understandGazetteer)
		if err != nil {
			return fmt.Errorf("failed to load gazetteer: %w", err)
		}
	}

	info := query.New(gaz).Understand(strings.Join(args, " "))

	out, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode query info: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
