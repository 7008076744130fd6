package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JsonlStorage appends records to a JSONL file.
type JsonlStorage[T any] struct {
	path string
	mu   sync.Mutex
}

func NewJsonlStorage[T any](path string) *JsonlStorage[T] {
	return &JsonlStorage[T]{path: path}
}

// Path returns the output file path.
func (s *JsonlStorage[T]) Path() string {
	return s.path
}

// Reset truncates the output file, creating it if needed.
func (s *JsonlStorage[T]) Reset() error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("truncate output file: %w", err)
	}
	return file.Close()
}

// PutBatch appends a batch of records as JSON lines.
func (s *JsonlStorage[T]) PutBatch(records []T) error {
	if len(records) == 0 {
		return nil
	}

	if err := s.ensureDir(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, record := range records {
		line, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}

func (s *JsonlStorage[T]) ensureDir() error {
	dir := filepath.Dir(s.path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
