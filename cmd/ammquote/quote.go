package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shibaone/shibaswap-v3-sdk/internal/config"
	"github.com/shibaone/shibaswap-v3-sdk/internal/model"
	"github.com/shibaone/shibaswap-v3-sdk/internal/quote"
	"github.com/shibaone/shibaswap-v3-sdk/internal/storage"
)

func runQuote(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inputFile, err := os.Open(cfg.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inputFile.Close()

	results := storage.NewJsonlStorage[model.QuoteResult](cfg.Out)
	rejects := storage.NewJsonlStorage[model.QuoteError](cfg.Errors)
	if !cfg.Append {
		if err := results.Reset(); err != nil {
			return err
		}
		if err := rejects.Reset(); err != nil {
			return err
		}
	}

	logger.Info("quote start",
		zap.String("in", cfg.In),
		zap.String("out", results.Path()),
		zap.String("errors", rejects.Path()),
		zap.Int("batch_size", cfg.BatchSize),
		zap.Uint32("slippage_bips", cfg.DefaultSlippageBips),
		zap.Bool("append", cfg.Append),
	)

	runner := quote.NewRunner(quote.RunConfig{
		BatchSize:           cfg.BatchSize,
		DefaultSlippageBips: cfg.DefaultSlippageBips,
	}, results, rejects, logger)

	_, err = runner.Run(ctx, inputFile)
	return err
}
