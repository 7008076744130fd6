package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("quote", pflag.ContinueOnError)
	flags.String("in", "", "")
	flags.String("out", "./data/quotes.jsonl", "")
	flags.Int("batch-size", 500, "")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	flags := newFlags()
	if err := flags.Parse([]string{"--in", "requests.jsonl"}); err != nil {
		t.Fatalf("parse flags failed: %v", err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.In != "requests.jsonl" {
		t.Fatalf("unexpected in: %q", cfg.In)
	}
	if cfg.Errors != "./data/quote_errors.jsonl" || cfg.BatchSize != 500 || cfg.DefaultSlippageBips != 50 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadEnvAndFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "ammquote.yaml")
	body := "in: from-file.jsonl\nbatch-size: 10\nslippage-bips: 100\n"
	if err := os.WriteFile(cfgFile, []byte(body), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	t.Setenv("AMMQUOTE_LOG_LEVEL", "debug")

	cfg, err := Load(cfgFile, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.In != "from-file.jsonl" || cfg.BatchSize != 10 || cfg.DefaultSlippageBips != 100 {
		t.Fatalf("config file not applied: %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("env not applied: %q", cfg.LogLevel)
	}
}

func TestLoadRequiresInput(t *testing.T) {
	if _, err := Load("", nil); err == nil {
		t.Fatalf("expected error without input path")
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{In: "a", Out: "b", Errors: "c", BatchSize: 0}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected batch size error")
	}
	cfg.BatchSize = 1
	cfg.DefaultSlippageBips = 10_001
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected slippage error")
	}
}
