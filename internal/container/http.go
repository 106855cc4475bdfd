package container

import (
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jaevor/go-nanoid"
	"github.com/samber/do"
	"github.com/serroba/urlregistry/internal/audit"
	"github.com/serroba/urlregistry/internal/handlers"
	"github.com/serroba/urlregistry/internal/health"
	"github.com/serroba/urlregistry/internal/messaging"
	"github.com/serroba/urlregistry/internal/middleware"
	"github.com/serroba/urlregistry/internal/shortener"
	"github.com/serroba/urlregistry/internal/store"
	"go.uber.org/zap"
)

const requestIDLength = 21

// HTTPPackage provides the router and the API. Invoking huma.API registers
// every route on the router.
func HTTPPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*chi.Mux, error) {
		logger := do.MustInvoke[*zap.Logger](i)

		router := chi.NewMux()
		router.Use(chimw.Recoverer)
		router.Use(middleware.AccessLog(logger))
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", middleware.HeaderRequestID},
			ExposedHeaders: []string{middleware.HeaderRequestID},
		}))

		return router, nil
	})

	do.Provide(i, func(i *do.Injector) (huma.API, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)
		router := do.MustInvoke[*chi.Mux](i)

		newID, err := nanoid.Standard(requestIDLength)
		if err != nil {
			return nil, fmt.Errorf("create request id generator: %w", err)
		}

		api := humachi.New(router, handlers.NewConfig())
		api.UseMiddleware(middleware.RequestMeta(api, newID))

		publishers := do.MustInvoke[*messaging.PublisherGroup](i)
		publishRegistered := messaging.NewPublishFunc[audit.EntryRegisteredEvent](
			publishers.Publisher(), audit.TopicEntryRegistered)

		handlers.RegisterRoutes(api, handlers.NewShortURLHandler(
			do.MustInvoke[*shortener.Registry](i), publishRegistered, logger))

		checks := map[string]health.Checker{}
		if options.RedisAddr != "" {
			checks[health.CheckRedis] = health.NewRedisChecker(do.MustInvoke[*RedisConnection](i).Client)
		}

		health.RegisterRoutes(api, health.NewHandler(do.MustInvoke[*store.MemoryStore](i), checks))
		if err = handlers.RegisterPage(router); err != nil {
			return nil, err
		}

		return api, nil
	})
}
