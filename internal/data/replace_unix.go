//go:build !windows

package data

import "os"

// replaceFile relies on rename being atomic within a directory.
func replaceFile(tempPath, targetPath string) error {
	return os.Rename(tempPath, targetPath)
}
