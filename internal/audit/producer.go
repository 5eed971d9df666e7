package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"marketplace/internal/shared/config"
)

// Publisher publishes audit events. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}

// KafkaPublisher publishes audit events to a Kafka topic.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher creates a publisher from the audit configuration.
func NewKafkaPublisher(cfg config.AuditConfig) (*KafkaPublisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaPublisher{
		producer: producer,
		topic:    cfg.Topic,
	}, nil
}

// Publish sends a single event, keyed by user so per-user ordering holds.
func (p *KafkaPublisher) Publish(_ context.Context, event *Event) error {
	payload, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.PartitionKey()),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: event.Timestamp,
	}

	if _, _, err := p.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to publish audit event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher discards every event. Used when auditing is disabled.
type NopPublisher struct{}

func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

func (*NopPublisher) Publish(context.Context, *Event) error { return nil }

func (*NopPublisher) Close() error { return nil }
