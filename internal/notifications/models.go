package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeOrderConfirmed      NotificationType = "ORDER_CONFIRMED"
	NotificationTypeOrderCancelled      NotificationType = "ORDER_CANCELLED"
	NotificationTypeEnrollmentConfirmed NotificationType = "ENROLLMENT_CONFIRMED"
)

// Email is the only delivery channel
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusQueued  NotificationStatus = "QUEUED"
	NotificationStatusSent    NotificationStatus = "SENT"
	NotificationStatusFailed  NotificationStatus = "FAILED"
)

// Notification is the message published to Kafka and consumed by the
// email workers
type Notification struct {
	ID   uuid.UUID        `json:"id"`
	Type NotificationType `json:"type"`

	RecipientID    uuid.UUID `json:"recipient_id"`
	RecipientEmail string    `json:"recipient_email"`
	RecipientName  string    `json:"recipient_name"`

	Subject      string                 `json:"subject"`
	TemplateData map[string]interface{} `json:"template_data"`

	Status     NotificationStatus `json:"status"`
	RetryCount int                `json:"retry_count"`
	MaxRetries int                `json:"max_retries"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// NewNotification builds a notification in the pending state
func NewNotification(notType NotificationType, recipientID uuid.UUID, email, name, subject string, data map[string]interface{}) *Notification {
	now := time.Now()
	return &Notification{
		ID:             uuid.New(),
		Type:           notType,
		RecipientID:    recipientID,
		RecipientEmail: email,
		RecipientName:  name,
		Subject:        subject,
		TemplateData:   data,
		Status:         NotificationStatusPending,
		MaxRetries:     3,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (n *Notification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

func NotificationFromJSON(data []byte) (*Notification, error) {
	var n Notification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// PartitionKey routes all of one recipient's notifications to the same
// partition so they are delivered in order
func (n *Notification) PartitionKey() string {
	return n.RecipientID.String()
}
