package container

import (
	"fmt"

	"github.com/samber/do"
	"go.uber.org/zap"
)

// NewLogger builds a console (development) or json (production) logger.
func NewLogger(format, level string) (*zap.Logger, error) {
	var config zap.Config

	switch format {
	case "console", "":
		config = zap.NewDevelopmentConfig()
	case "json":
		config = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	config.Level = atomic

	return config.Build()
}

func LoggerPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*zap.Logger, error) {
		options := do.MustInvoke[*Options](i)

		return NewLogger(options.LogFormat, options.LogLevel)
	})
}
