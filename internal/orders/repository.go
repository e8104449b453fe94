package orders

import (
	"context"
	"errors"

	"varsity/internal/fixtures"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrFixtureNotFound = errors.New("fixture not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrTicketNotFound  = errors.New("ticket not found")
)

type Repository interface {
	// CreateOrderWithAllocation allocates seats and creates the order, its
	// tickets and its payment atomically. Returns the created order.
	CreateOrderWithAllocation(ctx context.Context, fixtureID, audienceID uuid.UUID, noOfTickets int, method PaymentMethod) (*Order, error)

	GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error)
	GetOrdersByAudience(ctx context.Context, audienceID uuid.UUID) ([]Order, error)
	GetAllOrders(ctx context.Context) ([]Order, error)

	// CancelOrder transitions the order to the given cancelled status, frees
	// its tickets and marks the payment refunded. Cancelling an already
	// cancelled order is a no-op; the second return value reports whether
	// this call performed the cancellation.
	CancelOrder(ctx context.Context, orderID uuid.UUID, status OrderStatus) (*Order, bool, error)

	// CancelTicket marks a single ticket CANCELLED_BY_PARTICIPANT and sets
	// the owning order's payment to REFUNDED, atomically. The ticket row is
	// kept so its seat number stays out of circulation.
	CancelTicket(ctx context.Context, ticketID uuid.UUID) error
}

// lockForUpdate takes a row-level FOR UPDATE lock on the queried rows.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateOrderWithAllocation(ctx context.Context, fixtureID, audienceID uuid.UUID, noOfTickets int, method PaymentMethod) (*Order, error) {
	var order *Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the fixture row so concurrent orders for the same fixture
		// serialize and cannot allocate overlapping seat numbers
		var fixture fixtures.Fixture
		if err := lockForUpdate(tx).
			Where("id = ?", fixtureID).
			First(&fixture).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFixtureNotFound
			}
			return err
		}

		// Seat numbers issued to active orders for this fixture. Ticket
		// status is ignored on purpose: a cancelled ticket keeps its seat
		// number out of circulation
		var bookedSeatNos []string
		if err := tx.Model(&Ticket{}).
			Joins("JOIN orders ON orders.id = tickets.order_id").
			Where("orders.fixture_id = ? AND orders.status = ?", fixtureID, OrderStatusSuccess).
			Pluck("tickets.seat_no", &bookedSeatNos).Error; err != nil {
			return err
		}

		alloc, err := AllocateSeats(fixture.PricePerTicket, bookedSeatNos, noOfTickets)
		if err != nil {
			return err
		}

		order = &Order{
			AudienceID:  audienceID,
			FixtureID:   fixtureID,
			NoOfTickets: noOfTickets,
			Status:      OrderStatusSuccess,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		tickets := make([]Ticket, len(alloc.SeatNos))
		for i, seatNo := range alloc.SeatNos {
			tickets[i] = Ticket{
				OrderID: order.ID,
				SeatNo:  seatNo,
			}
		}
		if err := tx.Create(&tickets).Error; err != nil {
			return err
		}

		payment := &Payment{
			OrderID:    order.ID,
			AudienceID: audienceID,
			Amount:     alloc.TotalAmount,
			Method:     method,
			Status:     PaymentStatusPaid,
		}
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		order.Tickets = tickets
		order.Payment = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *repository) GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	var order Order
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Preload("Payment").
		Preload("Fixture").
		Preload("Fixture.TeamOne").
		Preload("Fixture.TeamTwo").
		Preload("Fixture.Stadium").
		Preload("Fixture.TimeSlot").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *repository) GetOrdersByAudience(ctx context.Context, audienceID uuid.UUID) ([]Order, error) {
	var orderList []Order
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Preload("Payment").
		Preload("Fixture").
		Preload("Fixture.TeamOne").
		Preload("Fixture.TeamTwo").
		Preload("Fixture.Stadium").
		Preload("Fixture.TimeSlot").
		Where("audience_id = ?", audienceID).
		Order("created_at DESC").
		Find(&orderList).Error
	return orderList, err
}

func (r *repository) GetAllOrders(ctx context.Context) ([]Order, error) {
	var orderList []Order
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Preload("Payment").
		Preload("Fixture").
		Preload("Fixture.TeamOne").
		Preload("Fixture.TeamTwo").
		Preload("Fixture.Stadium").
		Preload("Fixture.TimeSlot").
		Order("created_at DESC").
		Find(&orderList).Error
	return orderList, err
}

func (r *repository) CancelOrder(ctx context.Context, orderID uuid.UUID, status OrderStatus) (*Order, bool, error) {
	cancelled := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order Order
		if err := lockForUpdate(tx).
			Where("id = ?", orderID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		// Already cancelled: nothing to do, no double refund
		if order.Status.IsCancelled() {
			return nil
		}

		if err := tx.Model(&order).Update("status", status).Error; err != nil {
			return err
		}

		if err := tx.Where("order_id = ?", orderID).Delete(&Ticket{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&Payment{}).
			Where("order_id = ?", orderID).
			Update("status", PaymentStatusRefunded).Error; err != nil {
			return err
		}

		cancelled = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	order, err := r.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, false, err
	}

	return order, cancelled, nil
}

func (r *repository) CancelTicket(ctx context.Context, ticketID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ticket Ticket
		if err := lockForUpdate(tx).
			Where("id = ?", ticketID).
			First(&ticket).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return err
		}

		if err := tx.Model(&ticket).
			Update("status", OrderStatusCancelledByParticipant).Error; err != nil {
			return err
		}

		return tx.Model(&Payment{}).
			Where("order_id = ?", ticket.OrderID).
			Update("status", PaymentStatusRefunded).Error
	})
}
