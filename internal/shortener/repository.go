package shortener

import "context"

// Repository stores entries and assigns their identifiers.
// Implementations must serialize Add so that identifiers stay contiguous and
// an original URL is never stored twice.
type Repository interface {
	// Add returns the entry stored for originalURL, creating it under the next
	// identifier when absent. created reports whether a new entry was stored.
	Add(ctx context.Context, originalURL string) (entry *Entry, created bool, err error)

	// GetByID returns ErrNotFound if no entry has the identifier.
	GetByID(ctx context.Context, id ShortID) (*Entry, error)

	// Len returns the number of stored entries.
	Len(ctx context.Context) (int, error)
}
