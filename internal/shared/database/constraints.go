package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes and constraints AutoMigrate does not cover.
//
// Seat numbers deliberately carry NO unique constraint: uniqueness within a
// fixture is an emergent property of the allocator, and the order-create path
// serializes on the fixture row instead (see orders.Repository).
func MigrateConstraints(db *gorm.DB) error {
	// Index for the allocator's read of a fixture's orders with tickets
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_orders_fixture_status
		ON orders (fixture_id, status);
	`).Error
	if err != nil {
		return err
	}

	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_order_id
		ON tickets (order_id);
	`).Error
	if err != nil {
		return err
	}

	// A student enrolls in a section at most once
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_student_section
		ON student_schedules (student_id, section_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
