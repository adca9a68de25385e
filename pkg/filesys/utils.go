package filesys

import (
	"os"
)

// IsFile reports whether path exists and is a regular file.
// Symlinks are followed, matching the semantics the catalog and
// patcher rely on for optional files.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Exists reports whether path exists at all, regardless of type.
// Git worktrees keep ".git" as a file rather than a directory, so
// checkout detection cannot use IsDir.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
