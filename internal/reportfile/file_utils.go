package reportfile

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// Fileperm755 is a constant for file permissions.
	Fileperm755 fs.FileMode = 0o755 // Owner=rwx, Group=r-x, Other=r-x
	// Fileperm666 is a constant for file permissions.
	Fileperm666 fs.FileMode = 0o666 // Owner=rw-, Group=rw-, Other=rw-
)

// CreateFilePath creates the directory path for a file if it doesn't exist.
func CreateFilePath(fsys afero.Fs, path string) error {
	dirPath := filepath.Dir(path)
	if err := fsys.MkdirAll(dirPath, Fileperm755); err != nil {
		return fmt.Errorf("failed to create directory path %s: %w", dirPath, err)
	}
	return nil
}
