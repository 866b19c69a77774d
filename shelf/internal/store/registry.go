package store

import (
	"context"
	"sync"

	"github.com/Astemirdum/bookbuddy-service/pkg/kv"
	"github.com/Astemirdum/bookbuddy-service/pkg/profile"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/notify"
	"go.uber.org/zap"
)

// Registry hands out one initialized Store per profile.
type Registry struct {
	mu        sync.Mutex
	kv        kv.Storage
	publisher notify.Publisher
	log       *zap.Logger
	opts      []Option
	stores    map[string]*Store
}

func NewRegistry(storage kv.Storage, publisher notify.Publisher, log *zap.Logger, opts ...Option) *Registry {
	return &Registry{
		kv:        storage,
		publisher: publisher,
		log:       log,
		opts:      opts,
		stores:    make(map[string]*Store),
	}
}

// For returns the store of the profile carried by ctx.
func (r *Registry) For(ctx context.Context) *Store {
	id := profile.FromContext(ctx)

	r.mu.Lock()
	s, ok := r.stores[id]
	if !ok {
		s = New(r.kv, id, r.publisher, r.log, r.opts...)
		r.stores[id] = s
	}
	r.mu.Unlock()

	if !s.isLoaded() {
		s.Initialize(ctx)
	}
	return s
}
