package enrollments

import (
	"time"

	"varsity/internal/sections"
	"varsity/internal/users"

	"github.com/google/uuid"
)

// StudentSchedule links a student to a section they are enrolled in
type StudentSchedule struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;not null;index"`
	SectionID uuid.UUID `json:"section_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Student users.User       `json:"student" gorm:"foreignKey:StudentID"`
	Section sections.Section `json:"section" gorm:"foreignKey:SectionID"`
}

func (StudentSchedule) TableName() string {
	return "student_schedules"
}

// EnrollRequest represents a request to join a section
type EnrollRequest struct {
	SectionID string `json:"section_id" validate:"required,uuid"`
}

// ScheduleEntry is one enrolled section on a student's schedule, flagged
// with the codes of other enrolled sections it clashes with
type ScheduleEntry struct {
	EnrollmentID  string    `json:"enrollment_id"`
	SectionID     string    `json:"section_id"`
	SectionName   string    `json:"section_name"`
	SectionCode   string    `json:"section_code"`
	CourseName    string    `json:"course_name"`
	CourseCode    string    `json:"course_code"`
	Faculty       string    `json:"faculty"`
	RoomNo        string    `json:"room_no"`
	Day           string    `json:"day"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	ConflictsWith []string  `json:"conflicts_with"`
}

// SectionAvailability is a browsable section annotated for one student:
// whether they are enrolled and whether it clashes with their schedule
type SectionAvailability struct {
	Section     sections.SectionResponse `json:"section"`
	Enrolled    bool                     `json:"enrolled"`
	HasConflict bool                     `json:"has_conflict"`
}
