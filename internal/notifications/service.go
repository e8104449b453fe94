package notifications

import (
	"context"
	"fmt"
	"strings"

	"varsity/internal/users"
	"varsity/pkg/logger"

	"github.com/google/uuid"
)

// UserDirectory resolves recipients. Satisfied by the auth repository.
type UserDirectory interface {
	GetUserByID(ctx context.Context, id string) (*users.User, error)
}

// Service is the notification entry point for the rest of the application.
// It satisfies the Notifier interfaces of the orders and enrollments
// packages; publishing is best effort and never fails the caller.
type Service struct {
	producer Producer
	consumer Consumer
	userDir  UserDirectory
	log      *logger.Logger
}

func NewService(producer Producer, consumer Consumer, userDir UserDirectory) *Service {
	return &Service{
		producer: producer,
		consumer: consumer,
		userDir:  userDir,
		log:      logger.GetDefault(),
	}
}

// Start launches the consumer workers
func (s *Service) Start(ctx context.Context) error {
	if s.consumer == nil {
		return nil
	}
	return s.consumer.Start(ctx)
}

// Stop shuts down the pipeline
func (s *Service) Stop() error {
	var firstErr error
	if s.consumer != nil {
		if err := s.consumer.Stop(); err != nil {
			firstErr = err
		}
	}
	if s.producer != nil {
		if err := s.producer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *Service) publish(ctx context.Context, recipientID string, notType NotificationType, subject string, data map[string]interface{}) {
	if s.producer == nil {
		return
	}

	id, err := uuid.Parse(recipientID)
	if err != nil {
		s.log.ErrorWithContext(ctx, "invalid notification recipient", err, nil)
		return
	}

	user, err := s.userDir.GetUserByID(ctx, recipientID)
	if err != nil {
		s.log.ErrorWithContext(ctx, "failed to resolve notification recipient", err, map[string]interface{}{
			"recipient_id": recipientID,
		})
		return
	}

	notification := NewNotification(notType, id, user.Email, user.Name, subject, data)

	if err := s.producer.Publish(ctx, notification); err != nil {
		s.log.ErrorWithContext(ctx, "failed to publish notification", err, map[string]interface{}{
			"notification_id": notification.ID.String(),
			"type":            string(notType),
		})
	}
}

// NotifyOrderConfirmed implements orders.Notifier
func (s *Service) NotifyOrderConfirmed(ctx context.Context, audienceID, orderID string, seatNos []string, amount float64) {
	s.publish(ctx, audienceID, NotificationTypeOrderConfirmed, "Your tickets are confirmed", map[string]interface{}{
		"OrderID": orderID,
		"Seats":   strings.Join(seatNos, ", "),
		"Amount":  fmt.Sprintf("%.2f", amount),
	})
}

// NotifyOrderCancelled implements orders.Notifier
func (s *Service) NotifyOrderCancelled(ctx context.Context, audienceID, orderID, reason string) {
	s.publish(ctx, audienceID, NotificationTypeOrderCancelled, "Your order was cancelled", map[string]interface{}{
		"OrderID": orderID,
		"Reason":  reason,
	})
}

// NotifyEnrollmentConfirmed implements enrollments.Notifier
func (s *Service) NotifyEnrollmentConfirmed(ctx context.Context, studentID, sectionID, sectionName string) {
	s.publish(ctx, studentID, NotificationTypeEnrollmentConfirmed, "Enrollment confirmed", map[string]interface{}{
		"SectionID":   sectionID,
		"SectionName": sectionName,
	})
}
