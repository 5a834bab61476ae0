package importer

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

const defaultConcurrency = 4

// Result is the outcome of creating one entry.
type Result struct {
	Entry Entry
	Quote *domain.Quote
	Err   error
}

// Report lists results in file order.
type Report struct {
	Results []Result
}

// Created counts the entries that reached the API.
func (r Report) Created() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}

	return n
}

// Failed returns the results that carry an error.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}

	return failed
}

// Importer creates parsed entries through the quotes API.
type Importer struct {
	api         ports.QuotesAPI
	concurrency int
	logger      *slog.Logger
}

// New creates an importer. A concurrency below 1 uses the default of 4.
func New(api ports.QuotesAPI, concurrency int, logger *slog.Logger) *Importer {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Importer{
		api:         api,
		concurrency: concurrency,
		logger:      logger.With(slog.String("component", "importer")),
	}
}

// ImportFile parses path and imports every entry.
func (im *Importer) ImportFile(ctx context.Context, path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("opening quotes file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := Parse(f)
	if err != nil {
		return Report{}, err
	}

	return im.Import(ctx, entries), nil
}

// Import creates entries with bounded concurrency. One failing entry does
// not stop the others.
func (im *Importer) Import(ctx context.Context, entries []Entry) Report {
	fns := make([]func(context.Context) (*domain.Quote, error), len(entries))
	for i, entry := range entries {
		fns[i] = func(ctx context.Context) (*domain.Quote, error) {
			if err := entry.Validate(); err != nil {
				return nil, err
			}

			return im.api.CreateQuote(ctx, entry.NewQuote)
		}
	}

	outcomes := app.ParallelPartialLimit(ctx, im.concurrency, fns...)

	report := Report{Results: make([]Result, len(entries))}
	for i, out := range outcomes {
		report.Results[i] = Result{Entry: entries[i], Quote: out.Value, Err: out.Err}

		if out.Err != nil {
			im.logger.Warn("quote not imported",
				slog.Int("line", entries[i].Line),
				slog.Any("error", out.Err),
			)
		}
	}

	im.logger.Info("import finished",
		slog.Int("entries", len(entries)),
		slog.Int("created", report.Created()),
	)

	return report
}
