package database

import (
	"varsity/internal/courses"
	"varsity/internal/enrollments"
	"varsity/internal/fixtures"
	"varsity/internal/orders"
	"varsity/internal/sections"
	"varsity/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&fixtures.Team{},
		&fixtures.Stadium{},
		&fixtures.TimeSlot{},
		&fixtures.Fixture{},
		&orders.Order{},
		&orders.Ticket{},
		&orders.Payment{},
		&courses.Course{},
		&courses.Room{},
		&sections.Section{},
		&enrollments.StudentSchedule{},
	)
}
