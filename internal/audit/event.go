package audit

import "time"

// TopicEntryRegistered is the topic registrations are published on.
const TopicEntryRegistered = "entry.registered"

// EntryRegisteredEvent records that a new entry was added to the registry.
// Resubmissions of a stored URL do not produce events.
type EntryRegisteredEvent struct {
	ShortURL    int64     `json:"short_url"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
	RequestID   string    `json:"request_id,omitempty"`
	ClientIP    string    `json:"client_ip,omitempty"`
	UserAgent   string    `json:"user_agent,omitempty"`
}
