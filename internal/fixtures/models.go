package fixtures

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a sports team that plays fixtures
type Team struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	ShortName string    `json:"short_name" gorm:"type:varchar(10);not null"`
	LogoURL   string    `json:"logo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Team) TableName() string {
	return "teams"
}

// Stadium represents a venue where fixtures are played
type Stadium struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	Abbr      string    `json:"abbr" gorm:"type:varchar(10);not null"`
	Size      int       `json:"size" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Stadium) TableName() string {
	return "stadiums"
}

// TimeSlot represents when a fixture is played
type TimeSlot struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Day       string    `json:"day" gorm:"type:varchar(10);not null"`
	Start     time.Time `json:"start" gorm:"not null"`
	End       time.Time `json:"end" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TimeSlot) TableName() string {
	return "time_slots"
}

// Fixture represents a scheduled match between two teams
type Fixture struct {
	ID             uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	TeamOneID      uuid.UUID `json:"team_one_id" gorm:"type:uuid;not null"`
	TeamTwoID      uuid.UUID `json:"team_two_id" gorm:"type:uuid;not null"`
	StadiumID      uuid.UUID `json:"stadium_id" gorm:"type:uuid;not null"`
	TimeSlotID     uuid.UUID `json:"time_slot_id" gorm:"type:uuid;not null"`
	PricePerTicket float64   `json:"price_per_ticket" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	TeamOne  Team     `json:"team_one" gorm:"foreignKey:TeamOneID"`
	TeamTwo  Team     `json:"team_two" gorm:"foreignKey:TeamTwoID"`
	Stadium  Stadium  `json:"stadium" gorm:"foreignKey:StadiumID"`
	TimeSlot TimeSlot `json:"time_slot" gorm:"foreignKey:TimeSlotID"`
}

func (Fixture) TableName() string {
	return "fixtures"
}
