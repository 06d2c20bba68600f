package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/newssense/internal/articles"
	"github.com/jonathan/newssense/internal/config"
	"github.com/jonathan/newssense/internal/finance"
	"github.com/jonathan/newssense/internal/gazetteer"
	"github.com/jonathan/newssense/internal/pipeline"
)

var askCommand = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a financial question against the news pool",
	Long: `Runs the full relevance pipeline: query understanding -> scoring -> ranking -> context assembly.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAskCmd,
}

var (
	askConfigPath  string
	askNewsDir     string
	askStocksDir   string
	askGazetteer   string
	askTopN        int
	askMinScore    float64
	askMaxNonExact int
	askVerbose     bool
)

func init() {
	// Config file flag (processed first)
	askCommand.Flags().StringVar(&askConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	askCommand.Flags().StringVarP(&askNewsDir, "news-dir", "d", "", "Directory of JSON article files")
	askCommand.Flags().StringVar(&askStocksDir, "stocks-dir", "", "Directory of per-symbol CSV price files (optional)")
	askCommand.Flags().StringVar(&askGazetteer, "gazetteer", "", "Path to gazetteer JSON file (defaults to the embedded tables)")
	askCommand.Flags().IntVar(&askTopN, "top-n", 0, "Maximum articles in the context")
	askCommand.Flags().Float64Var(&askMinScore, "min-score", 0, "Minimum relevance score for non-exact matches")
	askCommand.Flags().IntVar(&askMaxNonExact, "max-non-exact", 0, "Maximum non-exact articles after exact matches")
	askCommand.Flags().BoolVarP(&askVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(askCommand)
}

func runAskCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	question := strings.Join(args, " ")

	// Step 1: Load config file if provided
	var cfg config.Config
	if askConfigPath != "" {
		loadedCfg, err := config.LoadConfig(askConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if askVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", askConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("news-dir") {
		cfg.NewsDir = askNewsDir
	}
	if cmd.Flags().Changed("stocks-dir") {
		cfg.StocksDir = askStocksDir
	}
	if cmd.Flags().Changed("gazetteer") {
		cfg.Gazetteer = askGazetteer
	}
	if cmd.Flags().Changed("top-n") {
		cfg.TopN = askTopN
	}
	if cmd.Flags().Changed("min-score") {
		cfg.MinScore = askMinScore
	}
	if cmd.Flags().Changed("max-non-exact") {
		cfg.MaxNonExact = askMaxNonExact
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = askVerbose
	}

	if cfg.NewsDir == "" {
		return fmt.Errorf("--news-dir is required (or set news_dir in the config file)")
	}

	// Step 3: Build collaborators
	gaz := gazetteer.Default()
	if cfg.Gazetteer != "" {
		var err error
		gaz, err = gazetteer.LoadFile(cfg.Gazetteer)
		if err != nil {
			return fmt.Errorf("failed to load gazetteer: %w", err)
		}
	}

	pool, err := articles.LoadDir(cfg.NewsDir)
	if err != nil {
		return fmt.Errorf("failed to load news pool: %w", err)
	}
	if cfg.Verbose {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded %d articles from %s\n", len(pool), cfg.NewsDir)
	}

	var provider finance.Provider
	if cfg.StocksDir != "" {
		provider, err = finance.LoadDir(cfg.StocksDir)
		if err != nil {
			return fmt.Errorf("failed to load price data: %w", err)
		}
	}

	// Step 4: Run the pipeline
	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		Question:    question,
		Articles:    pool,
		Gazetteer:   gaz,
		Finance:     provider,
		TopN:        cfg.TopN,
		MinScore:    cfg.MinScore,
		MaxNonExact: cfg.MaxNonExact,
		Verbose:     cfg.Verbose,
		Out:         os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	fmt.Println(result.Context)
	if len(result.Sources) > 0 {
		fmt.Println("\nSources:")
		for _, s := range result.Sources {
			fmt.Printf("  - %s\n", s)
		}
	}
	if len(result.SourceFiles) > 0 {
		fmt.Printf("\nSource files: %s\n", strings.Join(result.SourceFiles, ", "))
	}
	return nil
}
