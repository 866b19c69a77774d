package handler_test

import (
	"context"
	"sync"
	"testing"

	"github.com/Astemirdum/bookbuddy-service/catalog/internal/errs"
	"github.com/Astemirdum/bookbuddy-service/catalog/internal/handler"
	"github.com/Astemirdum/bookbuddy-service/catalog/internal/model"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	s.marked = append(s.marked, msg.Offset)
	s.mu.Unlock()
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	ch chan *sarama.ConsumerMessage
}

func (c fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.ch }

func TestConsumer_ConsumeClaim(t *testing.T) {
	t.Parallel()
	type call struct {
		bookID string
		rating int
	}
	var calls []call
	rate := func(_ context.Context, bookID string, rating int) (model.Book, error) {
		calls = append(calls, call{bookID, rating})
		switch bookID {
		case "404":
			return model.Book{}, errs.ErrNotFound
		case "down":
			return model.Book{}, errors.New("db down")
		}
		return model.Book{ID: bookID}, nil
	}

	msgs := []string{`{"bookId":"1","rating":5}`, `not json`, `{"bookId":"404","rating":3}`, `{"bookId":"down","rating":2}`}
	claim := fakeClaim{ch: make(chan *sarama.ConsumerMessage, len(msgs))}
	for i, m := range msgs {
		claim.ch <- &sarama.ConsumerMessage{Topic: "bookbuddy.ratings", Offset: int64(i), Value: []byte(m)}
	}
	close(claim.ch)

	session := &fakeSession{ctx: context.Background()}
	consumer := handler.NewConsumer(rate, zap.NewNop())
	require.NoError(t, consumer.Setup(session))
	require.NoError(t, consumer.ConsumeClaim(session, claim))
	require.NoError(t, consumer.Cleanup(session))

	require.Equal(t, []call{{"1", 5}, {"404", 3}, {"down", 2}}, calls)
	// a transient failure stays unmarked for redelivery
	require.Equal(t, []int64{0, 1, 2}, session.marked)
}
