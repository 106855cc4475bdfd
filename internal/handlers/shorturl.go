package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/urlregistry/internal/audit"
	"github.com/serroba/urlregistry/internal/messaging"
	"github.com/serroba/urlregistry/internal/shortener"
	"go.uber.org/zap"
)

// URLRegistry is the registry the short URL handlers delegate to.
type URLRegistry interface {
	Submit(ctx context.Context, candidate string) (entry *shortener.Entry, created bool, err error)
	Resolve(ctx context.Context, rawID string) (*shortener.Entry, error)
}

// ShortURLHandler handles URL registration and resolution.
type ShortURLHandler struct {
	registry          URLRegistry
	publishRegistered messaging.Publish[audit.EntryRegisteredEvent]
	logger            *zap.Logger
}

// NewShortURLHandler creates a new short URL handler.
func NewShortURLHandler(
	registry URLRegistry,
	publishRegistered messaging.Publish[audit.EntryRegisteredEvent],
	logger *zap.Logger,
) *ShortURLHandler {
	return &ShortURLHandler{
		registry:          registry,
		publishRegistered: publishRegistered,
		logger:            logger,
	}
}

func (h *ShortURLHandler) CreateShortURL(ctx context.Context, req *CreateShortURLRequest) (*CreateShortURLResponse, error) {
	candidate, err := decodeURLField(req.ContentType, req.RawBody)
	if err != nil {
		h.logger.Debug("undecodable short url request",
			zap.String("contentType", req.ContentType),
			zap.Error(err),
		)

		return nil, NewAPIError(MessageInvalidURL)
	}

	entry, created, err := h.registry.Submit(ctx, candidate)
	if err != nil {
		if errors.Is(err, shortener.ErrInvalidURL) {
			return nil, NewAPIError(MessageInvalidURL)
		}

		h.logger.Error("failed to register url", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to save url")
	}

	if created {
		h.publish(ctx, entry)
	}

	resp := &CreateShortURLResponse{}
	resp.Body.OriginalURL = entry.OriginalURL
	resp.Body.ShortURL = int64(entry.ShortID)

	return resp, nil
}

func (h *ShortURLHandler) RedirectToURL(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	entry, err := h.registry.Resolve(ctx, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrNotAnInteger):
			return nil, NewAPIError(MessageInvalidURL)
		case errors.Is(err, shortener.ErrNotFound):
			return nil, NewAPIError(MessageNotFound)
		}

		h.logger.Error("failed to resolve short url", zap.String("id", req.ID), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to get url")
	}

	resp := &RedirectResponse{
		Status:   http.StatusFound,
		Location: entry.OriginalURL,
	}

	return resp, nil
}

// publish emits the registration audit event. Failures are logged and never
// fail the request.
func (h *ShortURLHandler) publish(ctx context.Context, entry *shortener.Entry) {
	meta := RequestMetaFromContext(ctx)
	event := &audit.EntryRegisteredEvent{
		ShortURL:    int64(entry.ShortID),
		OriginalURL: entry.OriginalURL,
		CreatedAt:   entry.CreatedAt,
		RequestID:   meta.RequestID,
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
	}

	ctx = messaging.ContextWithRequestID(ctx, meta.RequestID)
	if err := h.publishRegistered(ctx, event); err != nil {
		h.logger.Error("failed to publish registration event",
			zap.Int64("shortUrl", event.ShortURL),
			zap.Error(err),
		)
	}
}

var errUnsupportedMediaType = errors.New("unsupported media type")

// decodeURLField extracts the url field of a JSON or form encoded body. A body
// without a media type is read as a form.
func decodeURLField(contentType string, body []byte) (string, error) {
	mediaType := ""
	if contentType != "" {
		parsed, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return "", err
		}

		mediaType = parsed
	}

	switch mediaType {
	case "application/json":
		var payload struct {
			URL string `json:"url"`
		}

		if err := json.Unmarshal(body, &payload); err != nil {
			return "", err
		}

		return payload.URL, nil
	case "application/x-www-form-urlencoded", "":
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return "", err
		}

		return values.Get("url"), nil
	default:
		return "", fmt.Errorf("%w: %s", errUnsupportedMediaType, mediaType)
	}
}
