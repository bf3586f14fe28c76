// Package files groups file access used by the generator.
//
// The filesystem sub-package abstracts reads and atomic writes so the
// pipeline can run against the OS or an in-memory tree in tests:
//
//	import "github.com/mathclaw/currseed/internal/files/filesystem"
//
//	fsProvider := filesystem.NewOSFileSystem()
//	err := fsProvider.WriteFileAtomic("data/seed/curriculum_seed.sql", script, 0644)
package files
