package config

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

// WithWriteTimeout bounds response writes. Zero keeps SSE streams open.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

func WithTrashTTL(d time.Duration) Option {
	return func(c *Config) {
		c.Shelf.TrashTTL = d
	}
}
