// Package ioutil writes translator output to disk "atomically-enough" for a
// single-threaded developer tool: write to a sibling temp file, optionally
// fsync, then rename over the destination.
package ioutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteConfig controls how WriteFile durably persists output.
type WriteConfig struct {
	// UseFsync forces an fsync of the temp file before the rename.
	UseFsync bool

	// TempSuffix names the sibling temp file written before the rename.
	TempSuffix string

	// BackupOriginal copies the existing destination (timestamped) before
	// it is replaced.
	BackupOriginal bool
}

// DefaultWriteConfig matches the translator CLI's defaults.
func DefaultWriteConfig() WriteConfig {
	return WriteConfig{
		UseFsync:       false,
		TempSuffix:     ".addaat.tmp",
		BackupOriginal: false,
	}
}

// WriteFile writes content to path via a temp file plus rename, so a reader
// never observes a partially-written destination file.
func WriteFile(path, content string, cfg WriteConfig) error {
	originalInfo, statErr := os.Stat(path)
	var fileMode os.FileMode = 0o644
	if statErr == nil {
		fileMode = originalInfo.Mode()
	}
	if cfg.TempSuffix == "" {
		cfg.TempSuffix = DefaultWriteConfig().TempSuffix
	}

	if cfg.BackupOriginal && statErr == nil {
		if err := backupFile(path); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	tempPath := path + cfg.TempSuffix
	tempFile, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tempFile.WriteString(content); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write content: %w", err)
	}

	if cfg.UseFsync {
		if err := tempFile.Sync(); err != nil {
			tempFile.Close()
			os.Remove(tempPath)
			return fmt.Errorf("failed to sync: %w", err)
		}
	}

	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to atomic rename: %w", err)
	}

	return nil
}

func backupFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102-150405")
	backupPath := fmt.Sprintf("%s.bak.%s", path, timestamp)

	perm := info.Mode().Perm()
	if perm == 0 {
		perm = 0o644
	}
	if err := os.WriteFile(backupPath, content, perm); err != nil {
		return err
	}
	return os.Chmod(backupPath, perm)
}

// ReadSourceFile reads an Addaat source file and appends the terminating
// zero byte §6 calls for. grammar.Match takes its input without that
// sentinel, so callers strip it again before matching.
func ReadSourceFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return append(data, 0), nil
}

// OutputPath computes the `.c` destination for a `.addaat` source path.
func OutputPath(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	return sourcePath[:len(sourcePath)-len(ext)] + ".c"
}
