// Package trash holds deleted reading lists for a bounded undo window.
package trash

import (
	"context"
	"sync"
	"time"

	"github.com/Astemirdum/bookbuddy-service/shelf/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type State string

const (
	StatePending  State = "DELETED_PENDING_UNDO"
	StateRestored State = "RESTORED"
	StatePurged   State = "PURGED"
)

var (
	ErrEntryNotFound = errors.New("trash entry not found")
	ErrEntryPurged   = errors.New("undo window has closed")
	ErrEntryRestored = errors.New("reading list was already restored")
)

const DefaultTTL = 30 * time.Second

type Entry struct {
	Token       string
	Profile     string
	List        model.ReadingList
	State       State
	DeletedAt   time.Time
	ExpiresAt   time.Time
	FinalizedAt time.Time
}

func (e Entry) Ticket() model.TrashTicket {
	return model.TrashTicket{
		Token:     e.Token,
		ListID:    e.List.ID,
		ExpiresAt: e.ExpiresAt.UnixMilli(),
	}
}

// Err reports why e can no longer be restored, or nil while it is pending.
func (e Entry) Err() error {
	switch e.State {
	case StatePurged:
		return ErrEntryPurged
	case StateRestored:
		return ErrEntryRestored
	}
	return nil
}

type Trash struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*Entry
	now     func() time.Time
	log     *zap.Logger
}

func New(ttl time.Duration, log *zap.Logger) *Trash {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Trash{
		ttl:     ttl,
		entries: make(map[string]*Entry),
		now:     time.Now,
		log:     log.Named("trash"),
	}
}

// SetClock replaces the time source.
func (t *Trash) SetClock(now func() time.Time) {
	t.mu.Lock()
	t.now = now
	t.mu.Unlock()
}

// Stage keeps a deep copy of list until it is restored, purged or expires.
func (t *Trash) Stage(profile string, list model.ReadingList) Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	e := &Entry{
		Token:     uuid.NewString(),
		Profile:   profile,
		List:      list.Clone(),
		State:     StatePending,
		DeletedAt: now,
		ExpiresAt: now.Add(t.ttl),
	}
	t.entries[e.Token] = e
	return e.snapshot()
}

// Restore moves a pending entry to restored and returns its list.
func (t *Trash) Restore(profile, token string) (model.ReadingList, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, err := t.pending(profile, token)
	if err != nil {
		return model.ReadingList{}, err
	}
	e.State = StateRestored
	e.FinalizedAt = t.now()
	return e.List.Clone(), nil
}

// Reopen returns a restored entry to pending so a restore that could not be
// written can be retried. The original undo window still applies.
func (t *Trash) Reopen(profile, token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[token]
	if !ok || e.Profile != profile {
		return ErrEntryNotFound
	}
	if e.State != StateRestored {
		return errors.Errorf("reopen %s entry", e.State)
	}
	e.State = StatePending
	e.FinalizedAt = time.Time{}
	t.expire(e)
	return nil
}

// Purge drops a pending entry before its window closes.
func (t *Trash) Purge(profile, token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, err := t.pending(profile, token)
	if err != nil {
		return err
	}
	e.State = StatePurged
	e.FinalizedAt = t.now()
	return nil
}

func (t *Trash) Get(profile, token string) (Entry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[token]
	if !ok || e.Profile != profile {
		return Entry{}, ErrEntryNotFound
	}
	t.expire(e)
	return e.snapshot(), nil
}

// pending must be called with the lock held.
func (t *Trash) pending(profile, token string) (*Entry, error) {
	e, ok := t.entries[token]
	if !ok || e.Profile != profile {
		return nil, ErrEntryNotFound
	}
	t.expire(e)
	if err := e.Err(); err != nil {
		return nil, err
	}
	return e, nil
}

func (t *Trash) expire(e *Entry) {
	if e.State == StatePending && !t.now().Before(e.ExpiresAt) {
		e.State = StatePurged
		e.FinalizedAt = e.ExpiresAt
		e.List = model.ReadingList{}
	}
}

// Sweep purges expired entries and forgets entries finalized more than one
// TTL ago. It returns the number of entries purged.
func (t *Trash) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	purged := 0
	for token, e := range t.entries {
		if e.State == StatePending {
			t.expire(e)
			if e.State == StatePurged {
				purged++
			}
			continue
		}
		if now.Sub(e.FinalizedAt) >= t.ttl {
			delete(t.entries, token)
		}
	}
	return purged
}

func (t *Trash) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Run sweeps every interval until ctx is done.
func (t *Trash) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := t.Sweep(); n > 0 {
				t.log.Debug("purged expired lists", zap.Int("count", n))
			}
		}
	}
}

func (e *Entry) snapshot() Entry {
	out := *e
	out.List = e.List.Clone()
	return out
}
