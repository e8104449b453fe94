package orders

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB opens a GORM handle that only builds SQL, without touching a
// real database.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=varsity dbname=varsity",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestLockForUpdate_EmitsRowLock(t *testing.T) {
	db := newDryRunDB(t)

	var order Order
	stmt := lockForUpdate(db.Model(&Order{})).
		Where("id = ?", uuid.New()).
		Find(&order).Statement

	// The serialization of order creation and cancellation depends on this
	// clause actually reaching the SQL
	assert.Contains(t, stmt.SQL.String(), "FOR UPDATE")
}
