// Package kv is the byte-level key-value layer behind the shelf store.
package kv

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("kv: key not found")

type Storage interface {
	// Get returns ErrNotFound for a missing key.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	BackendBadger = "badger"
	BackendRedis  = "redis"
)

type Config struct {
	Backend string `envconfig:"KV_BACKEND" default:"badger"`
	// Path of the badger directory. Empty keeps data in memory.
	Path          string `envconfig:"KV_PATH"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB"`
}

func New(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Backend {
	case BackendBadger, "":
		return NewBadger(cfg.Path)
	case BackendRedis:
		return NewRedis(ctx, cfg)
	default:
		return nil, errors.Errorf("kv: unknown backend %q", cfg.Backend)
	}
}
