package events

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/pkg/kafka"
)

// KafkaPublisher emits lending events to the lending-events topic.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	log      *zap.Logger
}

func NewKafkaPublisher(producer sarama.SyncProducer, log *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		log:      log.Named("events"),
	}
}

func (p *KafkaPublisher) LendingEvent(_ context.Context, ev kafka.LendingEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: kafka.LendingTopic,
		Key:   sarama.StringEncoder(ev.PatronID),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return err
	}
	p.log.Debug("published", zap.String("type", string(ev.Type)), zap.Int("bookID", ev.BookID))
	return nil
}

// Noop is used when no brokers are configured.
type Noop struct{}

func (Noop) LendingEvent(context.Context, kafka.LendingEvent) error { return nil }
