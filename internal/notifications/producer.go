package notifications

import (
	"context"
	"fmt"
	"time"

	"varsity/internal/shared/config"

	"github.com/IBM/sarama"
)

// Producer publishes notifications to the notification topic
type Producer interface {
	Publish(ctx context.Context, notification *Notification) error
	Close() error
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaProducer creates a sync producer for the notification pipeline
func NewKafkaProducer(cfg config.KafkaConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		topic:    cfg.NotificationTopic,
	}, nil
}

func (p *kafkaProducer) Publish(ctx context.Context, notification *Notification) error {
	notification.Status = NotificationStatusQueued
	notification.UpdatedAt = time.Now()

	messageBytes, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(notification.PartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Timestamp: notification.CreatedAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte("notification_type"), Value: []byte(notification.Type)},
		},
	}

	if _, _, err := p.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

func (p *kafkaProducer) Close() error {
	return p.producer.Close()
}
