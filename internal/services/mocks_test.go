package services

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/mathclaw/currseed/internal/files/filesystem"
)

type mockLogger struct {
	mu      sync.Mutex
	verbose []string
	info    []string
	errors  []string
}

func (m *mockLogger) Verbose(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verbose = append(m.verbose, fmt.Sprintf(format, args...))
}

func (m *mockLogger) Info(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.info = append(m.info, fmt.Sprintf(format, args...))
}

func (m *mockLogger) Error(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, fmt.Sprintf(format, args...))
}

// failingWriteFS serves reads from an in-memory tree and rejects every write.
type failingWriteFS struct {
	*filesystem.MemoryFileSystem
	writeErr error
	writes   int
}

func (f *failingWriteFS) WriteFileAtomic(_ string, _ []byte, _ fs.FileMode) error {
	f.writes++
	return f.writeErr
}
