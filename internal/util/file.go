package util

import (
    "os"
    "path/filepath"
)

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
    return os.MkdirAll(filepath.Dir(path), 0o755)
}
