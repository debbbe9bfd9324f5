package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/pkg/kafka"
)

type record func(ctx context.Context, ev kafka.LendingEvent) error

// Consumer implements sarama.ConsumerGroupHandler over the lending-events
// topic. Malformed messages are marked and skipped. A failed store write is
// logged and left unmarked; the audit log is best-effort, so the message is
// only seen again if the session restarts before a later offset is marked.
//
// The same Consumer is reused across sessions: the group loop re-enters it
// after every rebalance, so Setup must be safe to call repeatedly.
type Consumer struct {
	recordHandler record
	log           *zap.Logger
}

func NewConsumer(record record, log *zap.Logger) *Consumer {
	return &Consumer{
		recordHandler: record,
		log:           log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

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
			var ev kafka.LendingEvent
			if err := json.Unmarshal(message.Value, &ev); err != nil {
				consumer.log.Error("unmarshal lending event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.recordHandler(context.Background(), ev); err != nil {
				consumer.log.Error("record lending event", zap.Error(err))
				continue
			}

			consumer.log.Debug("message claimed",
				zap.String("value", string(message.Value)),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
