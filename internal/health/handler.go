package health

import (
	"context"
	"maps"
	"net/http"
	"slices"

	"github.com/danielgtaylor/huma/v2"
	"github.com/redis/go-redis/v9"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"

	CheckHealthy   = "healthy"
	CheckUnhealthy = "unhealthy"

	// CheckStore is always reported.
	CheckStore = "store"
	CheckRedis = "redis"
)

// Checker defines the interface for checking service health.
type Checker interface {
	Ping(ctx context.Context) error
}

// Counter reports the number of registered entries.
type Counter interface {
	Len(ctx context.Context) (int, error)
}

// RedisChecker adapts a redis client to the Checker interface.
type RedisChecker struct {
	client redis.UniversalClient
}

// NewRedisChecker creates a new Redis health checker.
func NewRedisChecker(client redis.UniversalClient) *RedisChecker {
	return &RedisChecker{client: client}
}

// Ping checks Redis connectivity.
func (r *RedisChecker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Handler handles health check operations.
type Handler struct {
	store  Counter
	checks map[string]Checker
}

// NewHandler creates a new health handler. checks may be nil.
func NewHandler(store Counter, checks map[string]Checker) *Handler {
	return &Handler{store: store, checks: checks}
}

// Response is the response for health check endpoint.
type Response struct {
	Body struct {
		Status  string            `json:"status"`
		Entries int               `json:"entries"`
		Checks  map[string]string `json:"checks"`
	}
}

// Check performs a health check of the registry store and the configured dependencies.
func (h *Handler) Check(ctx context.Context, _ *struct{}) (*Response, error) {
	resp := &Response{}
	resp.Body.Status = StatusOK
	resp.Body.Checks = make(map[string]string, len(h.checks)+1)

	entries, err := h.store.Len(ctx)
	resp.Body.Entries = entries
	resp.record(CheckStore, err)

	for _, name := range slices.Sorted(maps.Keys(h.checks)) {
		resp.record(name, h.checks[name].Ping(ctx))
	}

	return resp, nil
}

func (r *Response) record(name string, err error) {
	if err != nil {
		r.Body.Checks[name] = CheckUnhealthy
		r.Body.Status = StatusDegraded

		return
	}

	r.Body.Checks[name] = CheckHealthy
}

// RegisterRoutes registers health check routes.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Report service health",
	}, h.Check)
}
