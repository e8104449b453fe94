package orders

import (
	"time"

	"varsity/internal/fixtures"

	"github.com/google/uuid"
)

// Order represents a ticket order placed by an audience member for a fixture
type Order struct {
	ID          uuid.UUID   `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	AudienceID  uuid.UUID   `json:"audience_id" gorm:"type:uuid;not null;index"`
	FixtureID   uuid.UUID   `json:"fixture_id" gorm:"type:uuid;not null;index"`
	NoOfTickets int         `json:"no_of_tickets" gorm:"not null"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(30);not null;default:'SUCCESS'"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Tickets []Ticket         `json:"tickets" gorm:"foreignKey:OrderID"`
	Payment *Payment         `json:"payment,omitempty" gorm:"foreignKey:OrderID"`
	Fixture fixtures.Fixture `json:"fixture" gorm:"foreignKey:FixtureID"`
}

func (Order) TableName() string {
	return "orders"
}

// Ticket represents a single allocated seat within an order. A cancelled
// ticket keeps its row (and therefore its seat number) so seats are never
// reissued.
type Ticket struct {
	ID        uuid.UUID   `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	OrderID   uuid.UUID   `json:"order_id" gorm:"type:uuid;not null;index"`
	SeatNo    string      `json:"seat_no" gorm:"type:varchar(10);not null"`
	Status    OrderStatus `json:"status" gorm:"type:varchar(30);not null;default:'SUCCESS'"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// Payment represents the payment record for an order
type Payment struct {
	ID         uuid.UUID     `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	OrderID    uuid.UUID     `json:"order_id" gorm:"type:uuid;not null;uniqueIndex"`
	AudienceID uuid.UUID     `json:"audience_id" gorm:"type:uuid;not null;index"`
	Amount     float64       `json:"amount" gorm:"not null"`
	Method     PaymentMethod `json:"method" gorm:"type:varchar(20);not null"`
	Status     PaymentStatus `json:"status" gorm:"type:varchar(20);not null;default:'PAID'"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}
