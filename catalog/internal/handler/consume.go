package handler

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/bookbuddy-service/catalog/internal/errs"
	"github.com/Astemirdum/bookbuddy-service/catalog/internal/model"
	"github.com/Astemirdum/bookbuddy-service/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type rateBook func(ctx context.Context, bookID string, rating int) (model.Book, error)

// Consumer applies queued ratings to the catalog.
type Consumer struct {
	rateBookHandler rateBook
	log             *zap.Logger
}

func NewConsumer(rateBook rateBook, log *zap.Logger) *Consumer {
	return &Consumer{
		rateBookHandler: rateBook,
		log:             log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var msg kafka.RatingMsg
			if err := json.Unmarshal(message.Value, &msg); err != nil {
				consumer.log.Error("decode rating", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if _, err := consumer.rateBookHandler(session.Context(), msg.BookID, msg.Rating); err != nil {
				if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrInvalidRating) {
					consumer.log.Warn("rating dropped", zap.Error(err), zap.String("book", msg.BookID))
					session.MarkMessage(message, "")
					continue
				}
				// left unmarked so the rating is redelivered after a restart
				consumer.log.Error("consumer.rateBookHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
