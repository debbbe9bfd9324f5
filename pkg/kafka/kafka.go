package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const (
	LendingTopic       = "lending-events"
	AuditConsumerGroup = "lending-audit"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

// EventType is the wire discriminator on LendingTopic.
type EventType string

const (
	EventBorrowed EventType = "BORROWED"
	EventReturned EventType = "RETURNED"
)

// LendingEvent is the message shape on LendingTopic, shared by the producing
// and consuming services.
type LendingEvent struct {
	Type       EventType `json:"type"`
	PatronID   string    `json:"patronId"`
	BookID     int       `json:"bookId"`
	OccurredAt time.Time `json:"occurredAt"`
	LateFee    float64   `json:"lateFee,omitempty"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Return.Errors = true

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer group loop until ctx is canceled. Rebalances make
// Consume return without error, so the handler is re-entered in a loop.
func Consume(ctx context.Context, cg sarama.ConsumerGroup, h sarama.ConsumerGroupHandler, topic string, log *zap.Logger) {
	for {
		if err := cg.Consume(ctx, []string{topic}, h); err != nil {
			log.Error("consumer group", zap.String("topic", topic), zap.Error(err))
		}
		if ctx.Err() != nil {
			return
		}
	}
}
