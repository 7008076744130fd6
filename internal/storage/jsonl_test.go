package storage

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

type line struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

func TestJsonlStoragePutBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.jsonl")
	s := NewJsonlStorage[line](path)

	if err := s.PutBatch([]line{{ID: "a", Value: "1"}, {ID: "b", Value: "2"}}); err != nil {
		t.Fatalf("put batch failed: %v", err)
	}
	if err := s.PutBatch([]line{{ID: "c", Value: "3"}}); err != nil {
		t.Fatalf("put batch failed: %v", err)
	}
	if err := s.PutBatch(nil); err != nil {
		t.Fatalf("empty batch failed: %v", err)
	}

	got := readLines(t, path)
	if len(got) != 3 || got[0].ID != "a" || got[2].Value != "3" {
		t.Fatalf("unexpected lines: %+v", got)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if got := readLines(t, path); len(got) != 0 {
		t.Fatalf("expected empty file after reset, got %d lines", len(got))
	}
}

func readLines(t *testing.T, path string) []line {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer file.Close()

	var out []line
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var l line
		if err := json.Unmarshal(scanner.Bytes(), &l); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		out = append(out, l)
	}
	return out
}
