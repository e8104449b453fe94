package users

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleFaculty  Role = "FACULTY"
	RoleStudent  Role = "STUDENT"
	RoleAudience Role = "AUDIENCE"
)

type User struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name      string    `json:"name" gorm:"not null"`
	Password  string    `json:"-" gorm:"not null"` // hide in json
	Role      Role      `json:"role" gorm:"type:varchar(20);not null;default:'AUDIENCE'"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleAdmin, RoleFaculty, RoleStudent, RoleAudience:
		return true
	default:
		return false
	}
}
