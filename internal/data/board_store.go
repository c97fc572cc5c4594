package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// BoardStore manages board.json.
type BoardStore struct {
	path string
	mu   sync.RWMutex
}

// NewBoardStore creates a store for the board file at path.
func NewBoardStore(path string) *BoardStore {
	return &BoardStore{path: path}
}

// Path returns the backing file path.
func (s *BoardStore) Path() string {
	return s.path
}

func (s *BoardStore) lockPath() string {
	return s.path + ".lock"
}

// Load reads the board. A missing file yields SampleBoard.
func (s *BoardStore) Load() (*Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lock, err := lockBoardFile(s.lockPath(), true)
	if err != nil {
		return nil, fmt.Errorf("lock board: %w", err)
	}
	defer unlockBoardFile(lock)

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return SampleBoard(), nil
	}
	if err != nil {
		return nil, err
	}

	var board Board
	if err := json.Unmarshal(raw, &board); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	return &board, nil
}

// Save validates and atomically replaces board.json.
func (s *BoardStore) Save(board *Board) error {
	if board == nil {
		return fmt.Errorf("%w: nil board", ErrInvalidCard)
	}
	if err := board.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	lock, err := lockBoardFile(s.lockPath(), false)
	if err != nil {
		return fmt.Errorf("lock board: %w", err)
	}
	defer unlockBoardFile(lock)

	tmp, err := os.CreateTemp(dir, ".board-*.json")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := replaceFile(tmpPath, s.path); err != nil {
		cleanup()
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
