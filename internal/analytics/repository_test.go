package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

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

func TestPopularFixturesQuery_AggregatesPerOrder(t *testing.T) {
	db := newDryRunDB(t)

	var rows []fixturePopularityRow
	stmt := popularFixturesQuery(db).Find(&rows).Statement
	sql := stmt.SQL.String()

	// Payments must be rolled up per order before summing per fixture;
	// de-duplicating by amount would drop revenue from orders that happen
	// to cost the same
	assert.NotContains(t, sql, "DISTINCT")
	assert.Contains(t, sql, "GROUP BY orders.id")
	assert.Contains(t, sql, "SUM(order_totals.revenue)")
	assert.Contains(t, sql, "GROUP BY order_totals.fixture_id")
}
