package fixtures

import "time"

// CreateTeamRequest represents a request to create a team
type CreateTeamRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	ShortName string `json:"short_name" validate:"required,min=2,max=10"`
	LogoURL   string `json:"logo_url" validate:"omitempty,url"`
}

// UpdateTeamRequest represents a request to update a team
type UpdateTeamRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=100"`
	ShortName *string `json:"short_name" validate:"omitempty,min=2,max=10"`
	LogoURL   *string `json:"logo_url" validate:"omitempty,url"`
}

// CreateStadiumRequest represents a request to create a stadium
type CreateStadiumRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Abbr string `json:"abbr" validate:"required,min=2,max=10"`
	Size int    `json:"size" validate:"required,gt=0"`
}

// UpdateStadiumRequest represents a request to update a stadium
type UpdateStadiumRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=100"`
	Abbr *string `json:"abbr" validate:"omitempty,min=2,max=10"`
	Size *int    `json:"size" validate:"omitempty,gt=0"`
}

// CreateFixtureRequest represents a request to schedule a fixture
type CreateFixtureRequest struct {
	TeamOneID      string    `json:"team_one_id" validate:"required,uuid"`
	TeamTwoID      string    `json:"team_two_id" validate:"required,uuid,nefield=TeamOneID"`
	StadiumID      string    `json:"stadium_id" validate:"required,uuid"`
	Day            string    `json:"day" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	Start          time.Time `json:"start" validate:"required"`
	End            time.Time `json:"end" validate:"required,gtfield=Start"`
	PricePerTicket float64   `json:"price_per_ticket" validate:"required,gt=0"`
}

// UpdateFixtureRequest represents a request to update a fixture
type UpdateFixtureRequest struct {
	StadiumID      *string    `json:"stadium_id" validate:"omitempty,uuid"`
	Day            *string    `json:"day" validate:"omitempty,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	Start          *time.Time `json:"start"`
	End            *time.Time `json:"end"`
	PricePerTicket *float64   `json:"price_per_ticket" validate:"omitempty,gt=0"`
}

// FixtureListQuery represents query params for listing fixtures
type FixtureListQuery struct {
	Page    int    `form:"page"`
	Limit   int    `form:"limit"`
	TeamID  string `form:"team_id"`
	Stadium string `form:"stadium"`
	Day     string `form:"day"`
}

// TeamInfo is the team summary embedded in fixture responses
type TeamInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	LogoURL   string `json:"logo_url,omitempty"`
}

// StadiumInfo is the stadium summary embedded in fixture responses
type StadiumInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Abbr string `json:"abbr"`
	Size int    `json:"size"`
}

// TimeSlotInfo is the schedule summary embedded in fixture responses
type TimeSlotInfo struct {
	ID    string    `json:"id"`
	Day   string    `json:"day"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FixtureResponse represents a fixture in API responses
type FixtureResponse struct {
	ID             string       `json:"id"`
	TeamOne        TeamInfo     `json:"team_one"`
	TeamTwo        TeamInfo     `json:"team_two"`
	Stadium        StadiumInfo  `json:"stadium"`
	TimeSlot       TimeSlotInfo `json:"time_slot"`
	PricePerTicket float64      `json:"price_per_ticket"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// PaginatedFixtures represents a paginated fixture listing
type PaginatedFixtures struct {
	Fixtures   []FixtureResponse `json:"fixtures"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
