package shortener

import "time"

// ShortID is the integer key assigned to a registered URL.
type ShortID int64

// Entry is one stored mapping between an original URL and its short identifier.
type Entry struct {
	ShortID     ShortID
	OriginalURL string // exactly as submitted, never normalized
	CreatedAt   time.Time
}
