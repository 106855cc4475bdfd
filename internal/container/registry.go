package container

import (
	"fmt"
	"net"
	"time"

	"github.com/samber/do"
	"github.com/serroba/urlregistry/internal/shortener"
	"github.com/serroba/urlregistry/internal/store"
	"go.uber.org/zap"
)

// ResolverPackage provides the system DNS resolver used to validate hostnames.
func ResolverPackage(i *do.Injector) {
	do.ProvideValue[shortener.HostResolver](i, net.DefaultResolver)
}

func RegistryPackage(i *do.Injector) {
	do.Provide(i, func(_ *do.Injector) (*store.MemoryStore, error) {
		return store.NewMemoryStore(), nil
	})

	do.Provide(i, func(i *do.Injector) (*shortener.Registry, error) {
		options := do.MustInvoke[*Options](i)

		timeout, err := time.ParseDuration(options.LookupTimeout)
		if err != nil {
			return nil, fmt.Errorf("parse lookup timeout: %w", err)
		}

		if timeout <= 0 {
			return nil, fmt.Errorf("lookup timeout must be positive, got %s", timeout)
		}

		return shortener.NewRegistry(
			do.MustInvoke[*store.MemoryStore](i),
			do.MustInvoke[shortener.HostResolver](i),
			timeout,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
}
