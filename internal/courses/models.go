package courses

import (
	"time"

	"github.com/google/uuid"
)

// Course represents an academic course offered by the institution
type Course struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name      string    `json:"name" gorm:"not null"`
	Code      string    `json:"code" gorm:"type:varchar(20);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

// Room represents a classroom where sections are taught
type Room struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	No          string    `json:"no" gorm:"type:varchar(20);not null;uniqueIndex"`
	MaxCapacity int       `json:"max_capacity" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}

// CreateCourseRequest represents a request to create a course
type CreateCourseRequest struct {
	Name string `json:"name" validate:"required,min=2,max=150"`
	Code string `json:"code" validate:"required,min=2,max=20"`
}

// UpdateCourseRequest represents a request to update a course
type UpdateCourseRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=150"`
	Code *string `json:"code" validate:"omitempty,min=2,max=20"`
}

// CreateRoomRequest represents a request to create a room
type CreateRoomRequest struct {
	No          string `json:"no" validate:"required,min=1,max=20"`
	MaxCapacity int    `json:"max_capacity" validate:"required,gt=0"`
}

// UpdateRoomRequest represents a request to update a room
type UpdateRoomRequest struct {
	No          *string `json:"no" validate:"omitempty,min=1,max=20"`
	MaxCapacity *int    `json:"max_capacity" validate:"omitempty,gt=0"`
}
