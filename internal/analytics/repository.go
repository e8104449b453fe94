package analytics

import (
	"context"
	"errors"
	"fmt"

	"varsity/internal/enrollments"
	"varsity/internal/fixtures"
	"varsity/internal/orders"
	"varsity/internal/sections"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrFixtureNotFound = errors.New("fixture not found")

type Repository interface {
	GetFixtureAnalytics(ctx context.Context, fixtureID uuid.UUID) (*FixtureAnalytics, error)
	GetGlobalAnalytics(ctx context.Context) (*GlobalAnalytics, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetFixtureAnalytics(ctx context.Context, fixtureID uuid.UUID) (*FixtureAnalytics, error) {
	var fixture fixtures.Fixture
	err := r.db.WithContext(ctx).
		Preload("TeamOne").
		Preload("TeamTwo").
		Preload("Stadium").
		Where("id = ?", fixtureID).
		First(&fixture).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFixtureNotFound
		}
		return nil, err
	}

	analytics := &FixtureAnalytics{
		FixtureID:   fixture.ID.String(),
		TeamOne:     fixture.TeamOne.Name,
		TeamTwo:     fixture.TeamTwo.Name,
		Stadium:     fixture.Stadium.Name,
		StadiumSize: fixture.Stadium.Size,
	}

	// Active seat count
	var ticketsSold int64
	if err := r.db.WithContext(ctx).Model(&orders.Ticket{}).
		Joins("JOIN orders ON orders.id = tickets.order_id").
		Where("orders.fixture_id = ? AND orders.status = ?", fixtureID, orders.OrderStatusSuccess).
		Count(&ticketsSold).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}
	analytics.TicketsSold = int(ticketsSold)

	// Order counts by state
	type statusCount struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	var statusCounts []statusCount
	if err := r.db.WithContext(ctx).Model(&orders.Order{}).
		Select("status, COUNT(*) as count").
		Where("fixture_id = ?", fixtureID).
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	for _, sc := range statusCounts {
		if orders.OrderStatus(sc.Status).IsCancelled() {
			analytics.CancelledOrders += sc.Count
		} else {
			analytics.ActiveOrders += sc.Count
		}
	}

	// Revenue from paid payments, refunds from cancelled ones
	type moneyResult struct {
		Revenue  float64 `json:"revenue"`
		Refunded float64 `json:"refunded"`
	}
	var money moneyResult
	if err := r.db.WithContext(ctx).Model(&orders.Payment{}).
		Joins("JOIN orders ON orders.id = payments.order_id").
		Select("COALESCE(SUM(CASE WHEN payments.status = ? THEN payments.amount ELSE 0 END), 0) as revenue, "+
			"COALESCE(SUM(CASE WHEN payments.status = ? THEN payments.amount ELSE 0 END), 0) as refunded",
			orders.PaymentStatusPaid, orders.PaymentStatusRefunded).
		Where("orders.fixture_id = ?", fixtureID).
		Scan(&money).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate payments: %w", err)
	}
	analytics.Revenue = money.Revenue
	analytics.Refunded = money.Refunded

	if fixture.Stadium.Size > 0 {
		analytics.Utilization = (float64(analytics.TicketsSold) / float64(fixture.Stadium.Size)) * 100
	}

	return analytics, nil
}

type fixturePopularityRow struct {
	FixtureID   string  `json:"fixture_id"`
	TicketsSold int     `json:"tickets_sold"`
	Revenue     float64 `json:"revenue"`
}

// popularFixturesQuery ranks fixtures by tickets sold on active orders.
// Ticket counts and payment amounts are aggregated per order first, so the
// ticket join cannot multiply payment rows and equal amounts on different
// orders are not collapsed.
func popularFixturesQuery(db *gorm.DB) *gorm.DB {
	perOrder := db.Model(&orders.Order{}).
		Select("orders.id AS order_id, orders.fixture_id AS fixture_id, "+
			"COUNT(tickets.id) AS tickets_sold, COALESCE(MAX(payments.amount), 0) AS revenue").
		Joins("JOIN tickets ON tickets.order_id = orders.id").
		Joins("LEFT JOIN payments ON payments.order_id = orders.id AND payments.status = ?", orders.PaymentStatusPaid).
		Where("orders.status = ?", orders.OrderStatusSuccess).
		Group("orders.id, orders.fixture_id")

	return db.Table("(?) AS order_totals", perOrder).
		Select("order_totals.fixture_id, SUM(order_totals.tickets_sold) AS tickets_sold, " +
			"SUM(order_totals.revenue) AS revenue").
		Group("order_totals.fixture_id").
		Order("tickets_sold DESC").
		Limit(5)
}

func (r *repository) GetGlobalAnalytics(ctx context.Context) (*GlobalAnalytics, error) {
	analytics := &GlobalAnalytics{
		OrdersByStatus: make(map[string]int),
	}

	var totalFixtures int64
	if err := r.db.WithContext(ctx).Model(&fixtures.Fixture{}).Count(&totalFixtures).Error; err != nil {
		return nil, fmt.Errorf("failed to count fixtures: %w", err)
	}
	analytics.TotalFixtures = int(totalFixtures)

	var totalOrders int64
	if err := r.db.WithContext(ctx).Model(&orders.Order{}).Count(&totalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	analytics.TotalOrders = int(totalOrders)

	var ticketsSold int64
	if err := r.db.WithContext(ctx).Model(&orders.Ticket{}).
		Joins("JOIN orders ON orders.id = tickets.order_id").
		Where("orders.status = ?", orders.OrderStatusSuccess).
		Count(&ticketsSold).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}
	analytics.TotalTicketsSold = int(ticketsSold)

	type moneyResult struct {
		Revenue  float64 `json:"revenue"`
		Refunded float64 `json:"refunded"`
	}
	var money moneyResult
	if err := r.db.WithContext(ctx).Model(&orders.Payment{}).
		Select("COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) as revenue, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) as refunded",
			orders.PaymentStatusPaid, orders.PaymentStatusRefunded).
		Scan(&money).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate payments: %w", err)
	}
	analytics.TotalRevenue = money.Revenue
	analytics.TotalRefunded = money.Refunded

	type statusCount struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	var statusCounts []statusCount
	if err := r.db.WithContext(ctx).Model(&orders.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}
	for _, sc := range statusCounts {
		analytics.OrdersByStatus[sc.Status] = sc.Count
	}

	// Top 5 fixtures by active tickets
	var popular []fixturePopularityRow
	if err := popularFixturesQuery(r.db.WithContext(ctx)).
		Scan(&popular).Error; err != nil {
		return nil, fmt.Errorf("failed to rank fixtures: %w", err)
	}

	analytics.MostPopular = make([]FixturePopularity, 0, len(popular))
	for _, p := range popular {
		fixtureID, err := uuid.Parse(p.FixtureID)
		if err != nil {
			continue
		}

		var fixture fixtures.Fixture
		if err := r.db.WithContext(ctx).
			Preload("TeamOne").
			Preload("TeamTwo").
			Where("id = ?", fixtureID).
			First(&fixture).Error; err != nil {
			continue
		}

		analytics.MostPopular = append(analytics.MostPopular, FixturePopularity{
			FixtureID:   p.FixtureID,
			TeamOne:     fixture.TeamOne.Name,
			TeamTwo:     fixture.TeamTwo.Name,
			TicketsSold: p.TicketsSold,
			Revenue:     p.Revenue,
		})
	}

	var totalEnrollments int64
	if err := r.db.WithContext(ctx).Model(&enrollments.StudentSchedule{}).Count(&totalEnrollments).Error; err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}
	analytics.TotalEnrollments = int(totalEnrollments)

	var totalSections int64
	if err := r.db.WithContext(ctx).Model(&sections.Section{}).Count(&totalSections).Error; err != nil {
		return nil, fmt.Errorf("failed to count sections: %w", err)
	}
	analytics.TotalSections = int(totalSections)

	return analytics, nil
}
