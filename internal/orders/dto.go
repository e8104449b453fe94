package orders

import "time"

// CreateOrderRequest represents a request to buy tickets for a fixture
type CreateOrderRequest struct {
	FixtureID   string `json:"fixture_id" validate:"required,uuid"`
	NoOfTickets int    `json:"no_of_tickets" validate:"required,gt=0,lte=10"`
	Method      string `json:"method" validate:"required,oneof=CREDIT_CARD DEBIT_CARD"`
}

// CancelTicketRequest represents a request to cancel a single ticket
type CancelTicketRequest struct {
	TicketID string `json:"ticket_id"`
}

// TicketResponse represents a ticket in API responses
type TicketResponse struct {
	ID     string `json:"id"`
	SeatNo string `json:"seat_no"`
	Status string `json:"status"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Status string  `json:"status"`
}

// FixtureSummary is the fixture context embedded in order responses
type FixtureSummary struct {
	ID             string    `json:"id"`
	TeamOne        string    `json:"team_one"`
	TeamTwo        string    `json:"team_two"`
	Stadium        string    `json:"stadium"`
	Day            string    `json:"day"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	PricePerTicket float64   `json:"price_per_ticket"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID          string           `json:"id"`
	AudienceID  string           `json:"audience_id"`
	FixtureID   string           `json:"fixture_id"`
	NoOfTickets int              `json:"no_of_tickets"`
	Status      string           `json:"status"`
	Tickets     []TicketResponse `json:"tickets"`
	Payment     *PaymentResponse `json:"payment,omitempty"`
	Fixture     *FixtureSummary  `json:"fixture,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// CancelTicketResponse is the legacy-shaped payload for single ticket cancellation
type CancelTicketResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
