package container

import (
	"fmt"

	"github.com/caarlos0/env"
)

// Options configures both binaries. Flags are read by humacli; environment
// variables, when set, take precedence.
type Options struct {
	Port          int    `default:"5000"    env:"PORT"           help:"Port to listen on"                                      short:"p"`
	LookupTimeout string `default:"5s"      env:"LOOKUP_TIMEOUT" help:"Upper bound on hostname lookups during registration"`
	LogFormat     string `default:"console" env:"LOG_FORMAT"     help:"Log encoding: console or json"`
	LogLevel      string `default:"info"    env:"LOG_LEVEL"      help:"Minimum log level"`
	RedisAddr     string `default:""        env:"REDIS_ADDR"     help:"Redis address for audit events; empty uses an in-process bus" short:"r"`
	AuditFile     string `default:""        env:"AUDIT_FILE"     help:"Append registration audit events to this JSON lines file"`
	ConsumerGroup string `default:"audit"   env:"CONSUMER_GROUP" help:"Redis stream consumer group of the audit consumer"`
}

// ApplyEnv overrides options with the environment variables that are set.
func ApplyEnv(options *Options) error {
	if err := env.Parse(options); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	return nil
}

// ConsumerOptions returns the audit consumer configuration, read from the
// environment only.
func ConsumerOptions() (*Options, error) {
	options := &Options{
		LookupTimeout: "5s",
		LogFormat:     "console",
		LogLevel:      "info",
		RedisAddr:     "localhost:6379",
		ConsumerGroup: "audit",
	}

	if err := ApplyEnv(options); err != nil {
		return nil, err
	}

	return options, nil
}
