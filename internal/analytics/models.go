package analytics

// FixtureAnalytics summarizes ticket sales for one fixture
type FixtureAnalytics struct {
	FixtureID       string  `json:"fixture_id"`
	TeamOne         string  `json:"team_one"`
	TeamTwo         string  `json:"team_two"`
	Stadium         string  `json:"stadium"`
	StadiumSize     int     `json:"stadium_size"`
	TicketsSold     int     `json:"tickets_sold"`
	ActiveOrders    int     `json:"active_orders"`
	CancelledOrders int     `json:"cancelled_orders"`
	Revenue         float64 `json:"revenue"`
	Refunded        float64 `json:"refunded"`
	Utilization     float64 `json:"utilization"`
}

// FixturePopularity ranks a fixture by tickets sold
type FixturePopularity struct {
	FixtureID   string  `json:"fixture_id"`
	TeamOne     string  `json:"team_one"`
	TeamTwo     string  `json:"team_two"`
	TicketsSold int     `json:"tickets_sold"`
	Revenue     float64 `json:"revenue"`
}

// GlobalAnalytics summarizes sales across all fixtures
type GlobalAnalytics struct {
	TotalFixtures     int                 `json:"total_fixtures"`
	TotalOrders       int                 `json:"total_orders"`
	TotalTicketsSold  int                 `json:"total_tickets_sold"`
	TotalRevenue      float64             `json:"total_revenue"`
	TotalRefunded     float64             `json:"total_refunded"`
	OrdersByStatus    map[string]int      `json:"orders_by_status"`
	MostPopular       []FixturePopularity `json:"most_popular"`
	TotalEnrollments  int                 `json:"total_enrollments"`
	TotalSections     int                 `json:"total_sections"`
}
