package quote

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/shibaone/shibaswap-v3-sdk/internal/model"
	"github.com/shibaone/shibaswap-v3-sdk/internal/storage"
)

// RunConfig holds runtime settings for a quote batch.
type RunConfig struct {
	BatchSize           int
	DefaultSlippageBips uint32
}

// Stats counts the lines processed by Run.
type Stats struct {
	Total  int
	Quoted int
	Failed int
}

// Runner reads JSONL quote requests and writes results and rejects to storage.
type Runner struct {
	cfg     RunConfig
	quoter  Quoter
	results storage.Storage[model.QuoteResult]
	errors  storage.Storage[model.QuoteError]
	logger  *zap.Logger
}

// NewRunner builds a Runner with its dependencies.
func NewRunner(cfg RunConfig, results storage.Storage[model.QuoteResult], errs storage.Storage[model.QuoteError], logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:     cfg,
		quoter:  Quoter{DefaultSlippageBips: cfg.DefaultSlippageBips},
		results: results,
		errors:  errs,
		logger:  logger,
	}
}

// Run executes the quote loop until input is exhausted or ctx is done.
func (r *Runner) Run(ctx context.Context, in io.Reader) (Stats, error) {
	var stats Stats
	if r.results == nil || r.errors == nil {
		return stats, fmt.Errorf("storage is nil")
	}
	if r.cfg.BatchSize <= 0 {
		return stats, fmt.Errorf("batch size must be greater than zero")
	}

	scanner := bufio.NewScanner(in)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	results := make([]model.QuoteResult, 0, r.cfg.BatchSize)
	rejects := make([]model.QuoteError, 0, r.cfg.BatchSize)
	flush := func() error {
		if err := r.results.PutBatch(results); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		if err := r.errors.PutBatch(rejects); err != nil {
			return fmt.Errorf("write errors: %w", err)
		}
		r.logger.Debug("quote batch flushed",
			zap.Int("results", len(results)),
			zap.Int("errors", len(rejects)),
		)
		results = results[:0]
		rejects = rejects[:0]
		return nil
	}

	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		stats.Total++

		var req model.QuoteRequest
		if err := json.Unmarshal(line, &req); err != nil {
			stats.Failed++
			rejects = append(rejects, model.QuoteError{Line: lineNo, Error: fmt.Sprintf("decode request: %v", err)})
			r.logger.Warn("quote request rejected", zap.Int("line", lineNo), zap.Error(err))
		} else if res, err := r.quoter.Quote(req); err != nil {
			stats.Failed++
			rejects = append(rejects, model.QuoteError{Line: lineNo, ID: req.ID, Kind: req.Kind, Error: err.Error()})
			r.logger.Warn("quote failed",
				zap.Int("line", lineNo),
				zap.String("id", req.ID),
				zap.String("kind", string(req.Kind)),
				zap.Error(err),
			)
		} else {
			stats.Quoted++
			results = append(results, res)
		}

		if len(results)+len(rejects) >= r.cfg.BatchSize {
			if err := flush(); err != nil {
				return stats, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("scan input: %w", err)
	}
	if err := flush(); err != nil {
		return stats, err
	}

	r.logger.Info("quote complete",
		zap.Int("total", stats.Total),
		zap.Int("quoted", stats.Quoted),
		zap.Int("failed", stats.Failed),
	)
	return stats, nil
}
