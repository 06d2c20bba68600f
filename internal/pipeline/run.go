// Package pipeline provides the high-level orchestration for answering a
// question against the news pool: query understanding, parallel ranking
// and financial-data branches, and context assembly.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/newssense/internal/contextgen"
	"github.com/jonathan/newssense/internal/finance"
	"github.com/jonathan/newssense/internal/gazetteer"
	"github.com/jonathan/newssense/internal/observability"
	"github.com/jonathan/newssense/internal/query"
	"github.com/jonathan/newssense/internal/ranking"
	"github.com/jonathan/newssense/internal/types"
)

// Pipeline step identifiers used in progress events.
const (
	StepQuery     = "query_info"
	StepRanked    = "ranked_sources"
	StepFinancial = "financial_data"
	StepContext   = "context"
)

// Progress event categories.
const (
	CategoryUnderstanding = "understanding"
	CategoryRanking       = "ranking"
	CategoryFinance       = "finance"
	CategoryAssembly      = "assembly"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Question string
	Articles []types.Article

	// Gazetteer defaults to the embedded tables when nil.
	Gazetteer *gazetteer.Gazetteer
	// Finance supplies price series; nil means no financial data.
	Finance finance.Provider

	TopN        int
	MinScore    float64
	MaxNonExact int

	Verbose bool
	// Out receives verbose output; nil means verbose output is dropped.
	Out        io.Writer
	OnProgress ProgressCallback
}

// Result is the output handed to the answer-generation collaborator.
type Result struct {
	RunID       uuid.UUID           `json:"run_id"`
	Query       types.QueryInfo     `json:"query"`
	Ranked      []types.MatchResult `json:"ranked"`
	Context     string              `json:"context"`
	Sources     []string            `json:"sources"`
	SourceFiles []string            `json:"source_files"`
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID uuid.UUID, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID.String(),
			Content:  content,
		})
	}
}

// Run answers a question against the article pool. The ranking and
// financial-data branches run in parallel once the query is understood;
// neither branch fails the run, but a cancelled context does.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	runID := uuid.New()

	gaz := opts.Gazetteer
	if gaz == nil {
		gaz = gazetteer.Default()
	}

	var printer *observability.Printer
	if opts.Verbose && opts.Out != nil {
		printer = observability.NewPrinter(opts.Out)
	}

	info := query.New(gaz).Understand(opts.Question)
	if printer != nil {
		printer.PrintQueryInfo(&info)
	}
	emitProgress(&opts, runID, StepQuery, CategoryUnderstanding,
		fmt.Sprintf("Classified intent %q with %d companies", info.Intent, len(info.Entities.Companies)), info)

	now := time.Now()
	rankOpts := ranking.Options{
		TopN:        opts.TopN,
		MinScore:    opts.MinScore,
		MaxNonExact: opts.MaxNonExact,
	}

	g, gCtx := errgroup.WithContext(ctx)

	var ranked []types.MatchResult
	var prefetched finance.Provider = finance.None{}

	// Ranking branch
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		ranked = ranking.RankAt(opts.Articles, info, now, rankOpts)
		return nil
	})

	// Financial-data branch
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		prefetched = prefetchSeries(gaz, opts.Finance, info.Entities)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if printer != nil {
		printer.PrintRankedSources(ranked)
	}
	emitProgress(&opts, runID, StepRanked, CategoryRanking,
		fmt.Sprintf("Selected %d relevant articles", len(ranked)), ranked)

	contextText := contextgen.New(gaz, prefetched).Build(ranked, info.Entities)
	emitProgress(&opts, runID, StepContext, CategoryAssembly,
		fmt.Sprintf("Assembled context of %d characters", len(contextText)), nil)

	sourceFiles := distinctSourceFiles(ranked)
	if printer != nil {
		printer.PrintSourceFiles(sourceFiles)
	}

	return &Result{
		RunID:       runID,
		Query:       info,
		Ranked:      ranked,
		Context:     contextText,
		Sources:     sourceLabels(ranked),
		SourceFiles: sourceFiles,
	}, nil
}

// prefetchSeries copies the series for the query's entities out of the
// provider so context assembly does no further lookups. A nil provider
// yields an empty one.
func prefetchSeries(gaz *gazetteer.Gazetteer, provider finance.Provider, entities types.EntityMatch) finance.Provider {
	if provider == nil {
		return finance.None{}
	}

	series := []finance.Series{}
	for _, company := range entities.Companies {
		if symbol, ok := gaz.SymbolForCompany(company); ok {
			if s, ok := provider.SeriesFor(symbol); ok {
				series = append(series, s)
			}
		}
	}
	for _, index := range entities.Indices {
		if s, ok := provider.SeriesFor(index); ok {
			series = append(series, s)
		}
	}
	return finance.NewStatic(series...)
}

// sourceLabels formats each selected article as "title from source on
// date" for display alongside the answer.
func sourceLabels(ranked []types.MatchResult) []string {
	labels := make([]string, 0, len(ranked))
	for _, r := range ranked {
		labels = append(labels, fmt.Sprintf("%s from %s on %s", r.Article.Title, r.Article.Source, r.Article.Date))
	}
	return labels
}

// distinctSourceFiles returns the sorted set of data files the selected
// articles were loaded from.
func distinctSourceFiles(ranked []types.MatchResult) []string {
	seen := make(map[string]bool)
	files := []string{}
	for _, r := range ranked {
		f := r.Article.SourceFile
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}
