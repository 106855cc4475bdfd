package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/serroba/urlregistry/internal/audit"
)

// File is an audit.Sink appending one JSON document per line to a file.
type File struct {
	mu   sync.Mutex
	file *os.File
}

// NewFile opens path for appending, creating it when missing.
func NewFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit file: %w", err)
	}

	return &File{file: f}, nil
}

func (f *File) WriteEntryRegistered(_ context.Context, event *audit.EntryRegisteredEvent) error {
	line, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}

	line = append(line, '\n')

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err = f.file.Write(line); err != nil {
		return fmt.Errorf("write audit event: %w", err)
	}

	return nil
}

// Shutdown closes the file.
func (f *File) Shutdown() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.file.Close()
}
