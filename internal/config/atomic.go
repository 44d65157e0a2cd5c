package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var errEmptyPath = errors.New("config path is empty")

// writeFileAtomic replaces path with data via a synced temp file and a rename,
// so a crash mid-write leaves either the old file or the new one.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	if path == "" {
		return errEmptyPath
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("setting temp file permissions: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil { //nolint:gosec // G703: path comes from the config home
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
