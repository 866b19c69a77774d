package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// RatingTopic carries ratings the catalog could not take synchronously.
	RatingTopic = "bookbuddy.ratings"
	// ChangesTopic carries shelf change events.
	ChangesTopic = "bookbuddy.changes"

	CatalogConsumerGroup = "catalog"
)

var ErrDisabled = errors.New("kafka is disabled")

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type RatingMsg struct {
	BookID string `json:"bookId"`
	Rating int    `json:"rating"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the group session loop until ctx is done or the group is closed.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			log.Error("group.Consume", zap.Error(err), zap.Strings("topics", topics))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
		}
		if ctx.Err() != nil {
			return
		}
	}
}

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	if producer == nil {
		return noopEnqueuer{}
	}
	return &enqueuer{producer: producer}
}

type enqueuer struct {
	producer sarama.SyncProducer
}

func (q *enqueuer) Enqueue(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshal")
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.ByteEncoder(data)}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return errors.Wrap(err, "producer.SendMessage")
	}
	return nil
}

type noopEnqueuer struct{}

func (noopEnqueuer) Enqueue(string, any) error { return ErrDisabled }
