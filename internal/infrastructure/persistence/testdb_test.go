package persistence

import (
	"testing"

	"github.com/fruitsales/backend/internal/domain/identity"
	"github.com/fruitsales/backend/internal/domain/masterdata"
	"github.com/fruitsales/backend/internal/domain/sales"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory database with the full schema migrated
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&masterdata.Fruit{}, &sales.Sale{}, &identity.User{})
	require.NoError(t, err)

	// Mirror the partial unique index from the SQL migration; AutoMigrate
	// cannot express the WHERE clause through struct tags.
	err = db.Exec("CREATE UNIQUE INDEX idx_fruits_name ON fruits (name) WHERE NOT is_deleted").Error
	require.NoError(t, err)

	return db
}

func mustNewFruit(t *testing.T, name string, price int64) *masterdata.Fruit {
	t.Helper()
	fruit, err := masterdata.NewFruit(name, price)
	require.NoError(t, err)
	return fruit
}

func mustNewUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("operator", "secret-password")
	require.NoError(t, err)
	return user
}
