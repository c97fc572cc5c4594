//go:build windows

package data

import (
	"os"
	"path/filepath"
)

// Windows only opens the lockfile; cross-process exclusion is not enforced.
func lockBoardFile(lockPath string, shared bool) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
}

func unlockBoardFile(file *os.File) {
	if file == nil {
		return
	}
	_ = file.Close()
}
