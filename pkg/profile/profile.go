// Package profile carries the caller's storage namespace through a request.
// A profile plays the part of one browser's local storage.
package profile

import (
	"context"
	"regexp"
)

const (
	XProfileIDHeader = "X-Profile-Id"
	DefaultID        = "default"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

type ctxKey struct{}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the profile id stored in ctx or DefaultID.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return id
	}
	return DefaultID
}

// Valid reports whether id is safe to use as a storage key prefix.
func Valid(id string) bool {
	return idPattern.MatchString(id)
}
