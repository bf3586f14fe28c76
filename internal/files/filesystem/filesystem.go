package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FileSystemProvider is the file access the seed pipeline needs:
// existence checks and reads for CSV inputs, atomic writes for the script.
type FileSystemProvider interface {
	// Stat returns file information for the given path.
	// A missing path yields an error satisfying errors.Is(err, fs.ErrNotExist).
	Stat(path string) (FileInfo, error)

	// ReadFile reads a specific file at the given path.
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic replaces the file at path with data. Readers observe
	// either the previous content or the complete new content, never a
	// partial write. Missing parent directories are created.
	WriteFileAtomic(path string, data []byte, perm fs.FileMode) error
}
