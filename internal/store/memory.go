package store

import (
	"context"
	"sync"
	"time"

	"github.com/serroba/urlregistry/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Repository.
// Entries live for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []shortener.Entry            // entries[i] has ShortID i+1
	byURL   map[string]shortener.ShortID // original url -> id
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory registry store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byURL: make(map[string]shortener.ShortID),
		now:   time.Now,
	}
}

func (m *MemoryStore) Add(_ context.Context, originalURL string) (*shortener.Entry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.byURL[originalURL]; ok {
		entry := m.entries[id-1]

		return &entry, false, nil
	}

	entry := shortener.Entry{
		ShortID:     shortener.ShortID(len(m.entries) + 1),
		OriginalURL: originalURL,
		CreatedAt:   m.now(),
	}

	m.entries = append(m.entries, entry)
	m.byURL[originalURL] = entry.ShortID

	return &entry, true, nil
}

func (m *MemoryStore) GetByID(_ context.Context, id shortener.ShortID) (*shortener.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if id < 1 || int64(id) > int64(len(m.entries)) {
		return nil, shortener.ErrNotFound
	}

	entry := m.entries[id-1]

	return &entry, nil
}

func (m *MemoryStore) Len(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries), nil
}

// Compile-time check.
var _ shortener.Repository = (*MemoryStore)(nil)
