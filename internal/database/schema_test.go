package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ecart/internal/models"
)

// newTestDB opens a named in-memory SQLite database. The name keeps the
// database shared across the pool's connections but private to the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, EnsureSchema(db))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 8, count, "first initialization seeds the sample catalog")

	// Re-running must neither error nor duplicate seed rows.
	for i := 0; i < 3; i++ {
		require.NoError(t, EnsureSchema(db))
	}
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 8, count, "re-initialization must not duplicate seed rows")
}

func TestEnsureSchemaSkipsSeedWhenProductsExist(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, EnsureSchema(db))

	// A user-added product must not trigger a re-seed either.
	require.NoError(t, db.Create(&models.Product{Name: "Custom Widget", Price: 9.99}).Error)
	require.NoError(t, EnsureSchema(db))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 9, count)
}

func TestIsDuplicateTable(t *testing.T) {
	assert.True(t, isDuplicateTable(&pgconn.PgError{Code: "42P07"}))
	assert.False(t, isDuplicateTable(&pgconn.PgError{Code: "42501"}))
	assert.True(t, isDuplicateTable(errors.New(`table "products" already exists`)))
	assert.False(t, isDuplicateTable(errors.New("connection refused")))
}

func TestReadySingleAttempt(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, EnsureSchema(db))

	assert.NoError(t, Ready(context.Background(), db))

	// Closing the pool makes the single ping fail immediately.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	assert.Error(t, Ready(context.Background(), db))
}

func TestServerVersion(t *testing.T) {
	db := newTestDB(t)

	version, err := ServerVersion(db)
	assert.NoError(t, err)
	assert.Contains(t, version, "SQLite")
}
