package shortener

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Registry validates candidate URLs, deduplicates them and resolves short
// identifiers back to the original URL.
type Registry struct {
	store         Repository
	resolver      HostResolver
	lookupTimeout time.Duration
	logger        *zap.Logger
}

// NewRegistry creates a registry. A zero lookupTimeout leaves hostname
// lookups bounded only by the caller's context.
func NewRegistry(store Repository, resolver HostResolver, lookupTimeout time.Duration, logger *zap.Logger) *Registry {
	return &Registry{
		store:         store,
		resolver:      resolver,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}
}

// Submit validates candidate and returns its entry, registering it under the
// next identifier if it was not stored before. created is false when an entry
// with the byte-identical URL already existed.
func (r *Registry) Submit(ctx context.Context, candidate string) (entry *Entry, created bool, err error) {
	u, err := ParseCandidate(candidate)
	if err != nil {
		r.logRejected(candidate, err)

		return nil, false, err
	}

	// Lookups run outside the store lock.
	if err = r.lookupHost(ctx, u.Hostname()); err != nil {
		r.logRejected(candidate, err)

		return nil, false, err
	}

	entry, created, err = r.store.Add(ctx, candidate)
	if err != nil {
		return nil, false, err
	}

	if created {
		r.logger.Info("url registered",
			zap.Int64("shortUrl", int64(entry.ShortID)),
			zap.String("originalUrl", entry.OriginalURL),
		)
	}

	return entry, created, nil
}

// Resolve returns the entry registered under the identifier in rawID.
func (r *Registry) Resolve(ctx context.Context, rawID string) (*Entry, error) {
	id, err := ParseShortID(rawID)
	if err != nil {
		r.logger.Debug("short url rejected", zap.String("id", rawID), zap.Error(err))

		return nil, err
	}

	entry, err := r.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			r.logger.Debug("short url not found", zap.Int64("id", int64(id)))
		}

		return nil, err
	}

	return entry, nil
}

func (r *Registry) lookupHost(ctx context.Context, host string) error {
	if r.lookupTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.lookupTimeout)
		defer cancel()
	}

	addrs, err := r.resolver.LookupHost(ctx, host)
	if err != nil {
		return invalid(ReasonLookup, err)
	}

	if len(addrs) == 0 {
		return invalid(ReasonLookup, errNoAddresses)
	}

	return nil
}

func (r *Registry) logRejected(candidate string, err error) {
	var reason Reason

	var invalidErr *InvalidURLError
	if errors.As(err, &invalidErr) {
		reason = invalidErr.Reason
	}

	r.logger.Debug("url rejected",
		zap.String("candidate", candidate),
		zap.String("reason", string(reason)),
		zap.Error(err),
	)
}
