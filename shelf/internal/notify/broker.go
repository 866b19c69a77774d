// Package notify fans out shelf change events to subscribers.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Topic string

const (
	TopicReadingLists Topic = "reading-lists-changed"
	TopicRatings      Topic = "ratings-changed"
	TopicUserName     Topic = "user-name-changed"
)

// Event names the resource that changed. Subscribers re-read only that resource.
type Event struct {
	ID         string    `json:"id"`
	Profile    string    `json:"profile"`
	Topic      Topic     `json:"topic"`
	ResourceID string    `json:"resourceId,omitempty"`
	At         time.Time `json:"at"`
}

func NewEvent(profile string, topic Topic, resourceID string) Event {
	return Event{
		ID:         uuid.NewString(),
		Profile:    profile,
		Topic:      topic,
		ResourceID: resourceID,
		At:         time.Now().UTC(),
	}
}

// Publisher is what the store needs from a broker.
type Publisher interface {
	Publish(ev Event)
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(Event) {}

type Subscription struct {
	id      string
	profile string
	topics  map[Topic]struct{}
	ch      chan Event
	once    sync.Once
}

func (s *Subscription) Events() <-chan Event {
	return s.ch
}

func (s *Subscription) matches(ev Event) bool {
	if s.profile != "" && s.profile != ev.Profile {
		return false
	}
	if len(s.topics) == 0 {
		return true
	}
	_, ok := s.topics[ev.Topic]
	return ok
}

func (s *Subscription) close() {
	s.once.Do(func() { close(s.ch) })
}

type Broker struct {
	mu     sync.RWMutex
	subs   map[string]*Subscription
	buffer int
	closed bool
	log    *zap.Logger
}

func NewBroker(buffer int, log *zap.Logger) *Broker {
	if buffer <= 0 {
		buffer = 64
	}
	return &Broker{
		subs:   make(map[string]*Subscription),
		buffer: buffer,
		log:    log.Named("broker"),
	}
}

// Subscribe registers interest in topics of one profile. An empty profile
// receives every profile and no topics means every topic.
func (b *Broker) Subscribe(profile string, topics ...Topic) *Subscription {
	sub := &Subscription{
		id:      uuid.NewString(),
		profile: profile,
		topics:  make(map[Topic]struct{}, len(topics)),
		ch:      make(chan Event, b.buffer),
	}
	for _, t := range topics {
		sub.topics[t] = struct{}{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		sub.close()
		return sub
	}
	b.subs[sub.id] = sub
	return sub
}

func (b *Broker) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	delete(b.subs, sub.id)
	b.mu.Unlock()
	sub.close()
}

// Publish never blocks. A subscriber with a full buffer misses the event.
func (b *Broker) Publish(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, sub := range b.subs {
		if !sub.matches(ev) {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			b.log.Warn("dropped event for slow subscriber",
				zap.String("subscription", sub.id),
				zap.String("topic", string(ev.Topic)),
				zap.String("profile", ev.Profile))
		}
	}
}

func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, sub := range b.subs {
		sub.close()
		delete(b.subs, id)
	}
}
