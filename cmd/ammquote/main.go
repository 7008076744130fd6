package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ammquote",
		Short:        "Offline AMM pool and position quoting",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Evaluate a JSONL batch of quote requests",
		RunE:  runQuote,
	}

	quoteCmd.Flags().String("in", "", "input quote requests JSONL")
	quoteCmd.Flags().String("out", "./data/quotes.jsonl", "output quote results JSONL")
	quoteCmd.Flags().String("errors", "./data/quote_errors.jsonl", "rejected requests JSONL")
	quoteCmd.Flags().Bool("append", false, "append to outputs instead of truncating them")
	quoteCmd.Flags().Int("batch-size", 500, "records per output flush")
	quoteCmd.Flags().Uint32("slippage-bips", 50, "slippage tolerance used when a request sets none")
	quoteCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(quoteCmd)

	tickCmd := &cobra.Command{
		Use:   "tick",
		Short: "Convert between ticks and Q64.96 sqrt prices",
		RunE:  runTick,
	}

	tickCmd.Flags().Int("tick", 0, "tick to convert to a sqrt price")
	tickCmd.Flags().String("sqrt-price", "", "Q64.96 sqrt price to convert to a tick")
	tickCmd.Flags().Int("tick-spacing", 0, "also report the nearest usable tick for this spacing")
	tickCmd.Flags().String("fee", "", "fee tier (low, 500, ...) whose default spacing applies when --tick-spacing is unset")

	root.AddCommand(tickCmd)

	return root
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
