package orders

import (
	"context"
	"errors"
	"fmt"

	"varsity/internal/users"
	"varsity/pkg/logger"

	"github.com/google/uuid"
)

var ErrNotOrderOwner = errors.New("order belongs to another user")

// Notifier publishes order lifecycle notifications. Delivery is best effort
// and must never fail the order flow.
type Notifier interface {
	NotifyOrderConfirmed(ctx context.Context, audienceID, orderID string, seatNos []string, amount float64)
	NotifyOrderCancelled(ctx context.Context, audienceID, orderID, reason string)
}

type Service interface {
	SetNotifier(n Notifier)

	CreateOrder(ctx context.Context, audienceID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error)
	GetOrderByID(ctx context.Context, orderID uuid.UUID, requesterID uuid.UUID, requesterRole users.Role) (*OrderResponse, error)
	GetMyOrders(ctx context.Context, audienceID uuid.UUID) ([]OrderResponse, error)
	GetAllOrders(ctx context.Context) ([]OrderResponse, error)
	CancelOrder(ctx context.Context, orderID uuid.UUID, requesterID uuid.UUID, requesterRole users.Role) (*OrderResponse, error)
	CancelTicket(ctx context.Context, ticketID string) (*CancelTicketResponse, error)
}

type service struct {
	repo     Repository
	notifier Notifier
	log      *logger.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		log:  logger.GetDefault(),
	}
}

func (s *service) SetNotifier(n Notifier) {
	s.notifier = n
}

func (s *service) CreateOrder(ctx context.Context, audienceID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error) {
	fixtureID, err := uuid.Parse(req.FixtureID)
	if err != nil {
		return nil, fmt.Errorf("invalid fixture id: %w", err)
	}

	order, err := s.repo.CreateOrderWithAllocation(ctx, fixtureID, audienceID, req.NoOfTickets, PaymentMethod(req.Method))
	if err != nil {
		return nil, err
	}

	s.log.LogOrderCreated(ctx, order.ID.String(), fixtureID.String(), audienceID.String(), req.NoOfTickets)

	if s.notifier != nil {
		seatNos := make([]string, len(order.Tickets))
		for i, t := range order.Tickets {
			seatNos[i] = t.SeatNo
		}
		amount := 0.0
		if order.Payment != nil {
			amount = order.Payment.Amount
		}
		s.notifier.NotifyOrderConfirmed(ctx, audienceID.String(), order.ID.String(), seatNos, amount)
	}

	// Reload with fixture context for the response
	full, err := s.repo.GetOrderByID(ctx, order.ID)
	if err != nil {
		// Order is committed; fall back to the bare order
		resp := toOrderResponse(order)
		return &resp, nil
	}

	resp := toOrderResponse(full)
	return &resp, nil
}

func (s *service) GetOrderByID(ctx context.Context, orderID uuid.UUID, requesterID uuid.UUID, requesterRole users.Role) (*OrderResponse, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if requesterRole != users.RoleAdmin && order.AudienceID != requesterID {
		return nil, ErrNotOrderOwner
	}

	resp := toOrderResponse(order)
	return &resp, nil
}

func (s *service) GetMyOrders(ctx context.Context, audienceID uuid.UUID) ([]OrderResponse, error) {
	orderList, err := s.repo.GetOrdersByAudience(ctx, audienceID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orderList), nil
}

func (s *service) GetAllOrders(ctx context.Context) ([]OrderResponse, error) {
	orderList, err := s.repo.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orderList), nil
}

func (s *service) CancelOrder(ctx context.Context, orderID uuid.UUID, requesterID uuid.UUID, requesterRole users.Role) (*OrderResponse, error) {
	status := OrderStatusCancelledByParticipant
	if requesterRole == users.RoleAdmin {
		status = OrderStatusCancelledByAdmin
	} else {
		order, err := s.repo.GetOrderByID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if order.AudienceID != requesterID {
			return nil, ErrNotOrderOwner
		}
	}

	order, cancelled, err := s.repo.CancelOrder(ctx, orderID, status)
	if err != nil {
		return nil, err
	}

	if cancelled {
		s.log.LogOrderCancelled(ctx, orderID.String(), string(status))

		if s.notifier != nil {
			s.notifier.NotifyOrderCancelled(ctx, order.AudienceID.String(), orderID.String(), string(status))
		}
	}

	resp := toOrderResponse(order)
	return &resp, nil
}

func (s *service) CancelTicket(ctx context.Context, ticketID string) (*CancelTicketResponse, error) {
	if ticketID == "" {
		return &CancelTicketResponse{Success: false, Message: "Ticket id is required"}, nil
	}

	id, err := uuid.Parse(ticketID)
	if err != nil {
		return &CancelTicketResponse{Success: false, Message: "Invalid ticket id"}, nil
	}

	if err := s.repo.CancelTicket(ctx, id); err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			return &CancelTicketResponse{Success: false, Message: "Ticket not found"}, nil
		}
		return nil, err
	}

	return &CancelTicketResponse{Success: true, Message: "Ticket cancelled successfully"}, nil
}

func toOrderResponse(o *Order) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID.String(),
		AudienceID:  o.AudienceID.String(),
		FixtureID:   o.FixtureID.String(),
		NoOfTickets: o.NoOfTickets,
		Status:      string(o.Status),
		Tickets:     make([]TicketResponse, len(o.Tickets)),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}

	for i, t := range o.Tickets {
		resp.Tickets[i] = TicketResponse{
			ID:     t.ID.String(),
			SeatNo: t.SeatNo,
			Status: string(t.Status),
		}
	}

	if o.Payment != nil {
		resp.Payment = &PaymentResponse{
			ID:     o.Payment.ID.String(),
			Amount: o.Payment.Amount,
			Method: string(o.Payment.Method),
			Status: string(o.Payment.Status),
		}
	}

	if o.Fixture.ID != uuid.Nil {
		resp.Fixture = &FixtureSummary{
			ID:             o.Fixture.ID.String(),
			TeamOne:        o.Fixture.TeamOne.Name,
			TeamTwo:        o.Fixture.TeamTwo.Name,
			Stadium:        o.Fixture.Stadium.Name,
			Day:            o.Fixture.TimeSlot.Day,
			Start:          o.Fixture.TimeSlot.Start,
			End:            o.Fixture.TimeSlot.End,
			PricePerTicket: o.Fixture.PricePerTicket,
		}
	}

	return resp
}

func toOrderResponses(orderList []Order) []OrderResponse {
	responses := make([]OrderResponse, len(orderList))
	for i := range orderList {
		responses[i] = toOrderResponse(&orderList[i])
	}
	return responses
}
