package fsutil

import (
	"context"
	"errors"
	"fmt"
)

// BackupSuffix is appended to a file name to form its sidecar backup.
const BackupSuffix = ".bak"

// BackupPath returns the sidecar backup path for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies path to its sidecar backup, replacing any earlier
// backup. It returns the backup path, or "" if path does not exist.
func CreateBackup(ctx context.Context, path string) (string, error) {
	content, info, err := ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("create backup: %w", err)
	}

	backup := BackupPath(path)
	if err := WriteAtomic(ctx, backup, content, info.Mode.Perm()); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return backup, nil
}
