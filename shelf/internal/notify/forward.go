package notify

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/bookbuddy-service/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Sink interface {
	Send(ctx context.Context, ev Event) error
}

// Forward pumps sub into sink until ctx is done or sub is closed.
func Forward(ctx context.Context, sub *Subscription, sink Sink, log *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			if err := sink.Send(ctx, ev); err != nil {
				log.Warn("forward event", zap.Error(err), zap.String("topic", string(ev.Topic)))
			}
		}
	}
}

// KafkaSink writes events keyed by profile so one profile keeps its order.
type KafkaSink struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
}

func NewKafkaSink(producer sarama.SyncProducer, topic string) *KafkaSink {
	return &KafkaSink{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.Default(),
	}
}

func (s *KafkaSink) Send(_ context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(ev.Profile),
		Value: sarama.ByteEncoder(data),
	}
	return s.cb.Call(func() error {
		_, _, err := s.producer.SendMessage(msg)
		return err
	})
}
