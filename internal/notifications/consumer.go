package notifications

import (
	"context"
	"fmt"
	"time"

	"varsity/internal/shared/config"
	"varsity/pkg/logger"

	"github.com/IBM/sarama"
)

// Consumer drains the notification topic and delivers emails
type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

type kafkaConsumer struct {
	consumerGroup sarama.ConsumerGroup
	emailService  EmailService
	topics        []string
	log           *logger.Logger
	cancel        context.CancelFunc
}

func NewKafkaConsumer(cfg config.KafkaConfig, emailService EmailService) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = 1 * time.Second

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &kafkaConsumer{
		consumerGroup: consumerGroup,
		emailService:  emailService,
		topics:        []string{cfg.NotificationTopic},
		log:           logger.GetDefault(),
	}, nil
}

func (c *kafkaConsumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.consumerGroup.Errors() {
			c.log.ErrorWithContext(ctx, "notification consumer error", err, nil)
		}
	}()

	go func() {
		handler := &consumerGroupHandler{
			emailService: c.emailService,
			log:          c.log,
		}
		for {
			if err := c.consumerGroup.Consume(ctx, c.topics, handler); err != nil {
				c.log.ErrorWithContext(ctx, "notification consume loop failed", err, nil)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	return nil
}

func (c *kafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	return c.consumerGroup.Close()
}

type consumerGroupHandler struct {
	emailService EmailService
	log          *logger.Logger
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		notification, err := NotificationFromJSON(message.Value)
		if err != nil {
			h.log.ErrorWithContext(session.Context(), "failed to decode notification", err, map[string]interface{}{
				"offset": message.Offset,
			})
			session.MarkMessage(message, "")
			continue
		}

		if err := h.emailService.Send(session.Context(), notification); err != nil {
			h.log.ErrorWithContext(session.Context(), "failed to deliver notification", err, map[string]interface{}{
				"notification_id": notification.ID.String(),
				"type":            string(notification.Type),
			})
		}

		session.MarkMessage(message, "")
	}
	return nil
}
