package sections

import (
	"time"

	"varsity/internal/courses"
	"varsity/internal/users"

	"github.com/google/uuid"
)

// Section represents a scheduled teaching section of a course
type Section struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name      string    `json:"name" gorm:"not null"`
	Code      string    `json:"code" gorm:"type:varchar(20);not null;uniqueIndex"`
	CourseID  uuid.UUID `json:"course_id" gorm:"type:uuid;not null;index"`
	FacultyID uuid.UUID `json:"faculty_id" gorm:"type:uuid;not null;index"`
	RoomID    uuid.UUID `json:"room_id" gorm:"type:uuid;not null"`
	Day       string    `json:"day" gorm:"type:varchar(10);not null"`
	StartTime time.Time `json:"start_time" gorm:"not null"`
	EndTime   time.Time `json:"end_time" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Course  courses.Course `json:"course" gorm:"foreignKey:CourseID"`
	Faculty users.User     `json:"faculty" gorm:"foreignKey:FacultyID"`
	Room    courses.Room   `json:"room" gorm:"foreignKey:RoomID"`
}

func (Section) TableName() string {
	return "sections"
}

// CreateSectionRequest represents a request to create a section
type CreateSectionRequest struct {
	Name      string    `json:"name" validate:"required,min=2,max=150"`
	Code      string    `json:"code" validate:"required,min=2,max=20"`
	CourseID  string    `json:"course_id" validate:"required,uuid"`
	FacultyID string    `json:"faculty_id" validate:"required,uuid"`
	RoomID    string    `json:"room_id" validate:"required,uuid"`
	Day       string    `json:"day" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
}

// UpdateSectionRequest represents a request to update a section
type UpdateSectionRequest struct {
	Name      *string    `json:"name" validate:"omitempty,min=2,max=150"`
	FacultyID *string    `json:"faculty_id" validate:"omitempty,uuid"`
	RoomID    *string    `json:"room_id" validate:"omitempty,uuid"`
	Day       *string    `json:"day" validate:"omitempty,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

// SectionResponse represents a section in API responses
type SectionResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	CourseID   string    `json:"course_id"`
	CourseName string    `json:"course_name"`
	CourseCode string    `json:"course_code"`
	FacultyID  string    `json:"faculty_id"`
	Faculty    string    `json:"faculty"`
	RoomNo     string    `json:"room_no"`
	Day        string    `json:"day"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}
