package orders

import (
	"context"
	"testing"

	"varsity/internal/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateOrderWithAllocation(ctx context.Context, fixtureID, audienceID uuid.UUID, noOfTickets int, method PaymentMethod) (*Order, error) {
	args := m.Called(ctx, fixtureID, audienceID, noOfTickets, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *mockRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *mockRepository) GetOrdersByAudience(ctx context.Context, audienceID uuid.UUID) ([]Order, error) {
	args := m.Called(ctx, audienceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *mockRepository) GetAllOrders(ctx context.Context) ([]Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *mockRepository) CancelOrder(ctx context.Context, orderID uuid.UUID, status OrderStatus) (*Order, bool, error) {
	args := m.Called(ctx, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*Order), args.Bool(1), args.Error(2)
}

func (m *mockRepository) CancelTicket(ctx context.Context, ticketID uuid.UUID) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyOrderConfirmed(ctx context.Context, audienceID, orderID string, seatNos []string, amount float64) {
	m.Called(ctx, audienceID, orderID, seatNos, amount)
}

func (m *mockNotifier) NotifyOrderCancelled(ctx context.Context, audienceID, orderID, reason string) {
	m.Called(ctx, audienceID, orderID, reason)
}

func newTestOrder(audienceID uuid.UUID, status OrderStatus) *Order {
	orderID := uuid.New()
	return &Order{
		ID:          orderID,
		AudienceID:  audienceID,
		FixtureID:   uuid.New(),
		NoOfTickets: 2,
		Status:      status,
		Tickets: []Ticket{
			{ID: uuid.New(), OrderID: orderID, SeatNo: "1", Status: OrderStatusSuccess},
			{ID: uuid.New(), OrderID: orderID, SeatNo: "2", Status: OrderStatusSuccess},
		},
		Payment: &Payment{
			ID:         uuid.New(),
			OrderID:    orderID,
			AudienceID: audienceID,
			Amount:     100.0,
			Method:     PaymentMethodCreditCard,
			Status:     PaymentStatusPaid,
		},
	}
}

func TestCreateOrder_Success(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	svc := NewService(repo)
	svc.SetNotifier(notifier)

	audienceID := uuid.New()
	order := newTestOrder(audienceID, OrderStatusSuccess)

	repo.On("CreateOrderWithAllocation", mock.Anything, order.FixtureID, audienceID, 2, PaymentMethodCreditCard).
		Return(order, nil)
	repo.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil)
	notifier.On("NotifyOrderConfirmed", mock.Anything, audienceID.String(), order.ID.String(), []string{"1", "2"}, 100.0).
		Return()

	resp, err := svc.CreateOrder(context.Background(), audienceID, CreateOrderRequest{
		FixtureID:   order.FixtureID.String(),
		NoOfTickets: 2,
		Method:      "CREDIT_CARD",
	})

	require.NoError(t, err)
	assert.Equal(t, order.ID.String(), resp.ID)
	assert.Equal(t, "SUCCESS", resp.Status)
	assert.Len(t, resp.Tickets, 2)
	require.NotNil(t, resp.Payment)
	assert.Equal(t, 100.0, resp.Payment.Amount)
	assert.Equal(t, "PAID", resp.Payment.Status)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateOrder_FixtureNotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	audienceID := uuid.New()
	fixtureID := uuid.New()

	repo.On("CreateOrderWithAllocation", mock.Anything, fixtureID, audienceID, 1, PaymentMethodDebitCard).
		Return(nil, ErrFixtureNotFound)

	resp, err := svc.CreateOrder(context.Background(), audienceID, CreateOrderRequest{
		FixtureID:   fixtureID.String(),
		NoOfTickets: 1,
		Method:      "DEBIT_CARD",
	})

	assert.ErrorIs(t, err, ErrFixtureNotFound)
	assert.Nil(t, resp)
	repo.AssertExpectations(t)
}

func TestCancelOrder_AsAdmin(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	svc := NewService(repo)
	svc.SetNotifier(notifier)

	audienceID := uuid.New()
	adminID := uuid.New()
	order := newTestOrder(audienceID, OrderStatusCancelledByAdmin)
	order.Tickets = nil
	order.Payment.Status = PaymentStatusRefunded

	repo.On("CancelOrder", mock.Anything, order.ID, OrderStatusCancelledByAdmin).
		Return(order, true, nil)
	notifier.On("NotifyOrderCancelled", mock.Anything, audienceID.String(), order.ID.String(), "CANCELLED_BY_ADMIN").
		Return()

	resp, err := svc.CancelOrder(context.Background(), order.ID, adminID, users.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, "CANCELLED_BY_ADMIN", resp.Status)
	assert.Empty(t, resp.Tickets)
	assert.Equal(t, "REFUNDED", resp.Payment.Status)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCancelOrder_AsOwner(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	audienceID := uuid.New()
	order := newTestOrder(audienceID, OrderStatusSuccess)
	cancelled := newTestOrder(audienceID, OrderStatusCancelledByParticipant)
	cancelled.ID = order.ID

	repo.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil)
	repo.On("CancelOrder", mock.Anything, order.ID, OrderStatusCancelledByParticipant).
		Return(cancelled, true, nil)

	resp, err := svc.CancelOrder(context.Background(), order.ID, audienceID, users.RoleAudience)

	require.NoError(t, err)
	assert.Equal(t, "CANCELLED_BY_PARTICIPANT", resp.Status)
	repo.AssertExpectations(t)
}

func TestCancelOrder_NotOwner(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	order := newTestOrder(uuid.New(), OrderStatusSuccess)
	otherUser := uuid.New()

	repo.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil)

	resp, err := svc.CancelOrder(context.Background(), order.ID, otherUser, users.RoleAudience)

	assert.ErrorIs(t, err, ErrNotOrderOwner)
	assert.Nil(t, resp)
	repo.AssertNotCalled(t, "CancelOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelOrder_AlreadyCancelledIsIdempotent(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	svc := NewService(repo)
	svc.SetNotifier(notifier)

	audienceID := uuid.New()
	order := newTestOrder(audienceID, OrderStatusCancelledByParticipant)
	order.Payment.Status = PaymentStatusRefunded

	repo.On("CancelOrder", mock.Anything, order.ID, OrderStatusCancelledByAdmin).
		Return(order, false, nil)

	resp, err := svc.CancelOrder(context.Background(), order.ID, uuid.New(), users.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, "CANCELLED_BY_PARTICIPANT", resp.Status)
	assert.Equal(t, "REFUNDED", resp.Payment.Status)
	// No notification for a no-op cancellation
	notifier.AssertNotCalled(t, "NotifyOrderCancelled", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelTicket_MissingID(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	resp, err := svc.CancelTicket(context.Background(), "")

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Ticket id is required", resp.Message)
	repo.AssertNotCalled(t, "CancelTicket", mock.Anything, mock.Anything)
}

func TestCancelTicket_InvalidID(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	resp, err := svc.CancelTicket(context.Background(), "not-a-uuid")

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid ticket id", resp.Message)
}

func TestCancelTicket_NotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	ticketID := uuid.New()
	repo.On("CancelTicket", mock.Anything, ticketID).Return(ErrTicketNotFound)

	resp, err := svc.CancelTicket(context.Background(), ticketID.String())

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Ticket not found", resp.Message)
}

func TestCancelTicket_Success(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	// The repository contract cancels the ticket and refunds the owning
	// order's payment in one transaction
	ticketID := uuid.New()
	repo.On("CancelTicket", mock.Anything, ticketID).Return(nil)

	resp, err := svc.CancelTicket(context.Background(), ticketID.String())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	repo.AssertExpectations(t)
}

func TestGetOrderByID_OwnerAndAdminAccess(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	audienceID := uuid.New()
	order := newTestOrder(audienceID, OrderStatusSuccess)

	repo.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil)

	// Owner can read
	resp, err := svc.GetOrderByID(context.Background(), order.ID, audienceID, users.RoleAudience)
	require.NoError(t, err)
	assert.Equal(t, order.ID.String(), resp.ID)

	// Admin can read anyone's order
	resp, err = svc.GetOrderByID(context.Background(), order.ID, uuid.New(), users.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, order.ID.String(), resp.ID)

	// Another audience member cannot
	resp, err = svc.GetOrderByID(context.Background(), order.ID, uuid.New(), users.RoleAudience)
	assert.ErrorIs(t, err, ErrNotOrderOwner)
	assert.Nil(t, resp)
}
