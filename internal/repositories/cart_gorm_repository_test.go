package repositories_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ecart/internal/database"
	"ecart/internal/models"
	"ecart/internal/repositories"
)

// newTestDB opens a test-private in-memory SQLite database with the
// schema ensured and the 8 sample products seeded.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.EnsureSchema(db))
	return db
}

func cartRowCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	return count
}

func TestGetItemsEmptyCartReturnsEmptySlice(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMCartRepository(db)

	entries, err := repo.GetItems()
	require.NoError(t, err)
	assert.NotNil(t, entries, "empty cart must serialize as [], not null")
	assert.Len(t, entries, 0)
}

func TestCartAddMergesQuantities(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMCartRepository(db)

	require.NoError(t, repo.Add(1, 2))
	require.NoError(t, repo.Add(1, 3))

	entries, err := repo.GetItems()
	require.NoError(t, err)
	require.Len(t, entries, 1, "same product must never produce two cart rows")
	assert.Equal(t, uint(1), entries[0].ProductID)
	assert.Equal(t, 5, entries[0].Quantity)
}

func TestCartEntrySubtotal(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMCartRepository(db)

	var product models.Product
	require.NoError(t, db.First(&product, 1).Error)

	require.NoError(t, repo.Add(product.ID, 2))

	entries, err := repo.GetItems()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, product.Name, entries[0].ProductName)
	assert.InDelta(t, product.Price*2, entries[0].Subtotal, 0.001)

	total, err := repo.Total()
	require.NoError(t, err)
	assert.InDelta(t, product.Price*2, total, 0.001)
}

func TestCartRemoveDeletesExactlyOneRow(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMCartRepository(db)

	require.NoError(t, repo.Add(1, 1))
	require.NoError(t, repo.Add(2, 1))
	require.NoError(t, repo.Add(3, 1))

	entries, err := repo.GetItems()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	victim := entries[1]
	require.NoError(t, repo.Remove(victim.CartID))

	entries, err = repo.GetItems()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.NotEqual(t, victim.CartID, e.CartID)
	}

	// Removing a row that no longer exists is a no-op, not an error.
	assert.NoError(t, repo.Remove(victim.CartID))
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMCartRepository(db)

	require.NoError(t, repo.Add(1, 2))
	require.NoError(t, repo.Add(2, 1))

	wantTotal, err := repo.Total()
	require.NoError(t, err)
	require.Greater(t, wantTotal, 0.0)

	order, err := repo.Checkout("ref-123")
	require.NoError(t, err)
	assert.Equal(t, "completed", order.Status)
	assert.Equal(t, "ref-123", order.Reference)
	assert.InDelta(t, wantTotal, order.TotalAmount, 0.001)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.EqualValues(t, 1, orderCount, "one checkout creates exactly one order")
	assert.EqualValues(t, 0, cartRowCount(t, db), "checkout empties the cart")
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMCartRepository(db)

	order, err := repo.Checkout("ref-456")
	assert.ErrorIs(t, err, repositories.ErrEmptyCart)
	assert.Nil(t, order)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.EqualValues(t, 0, orderCount, "empty-cart checkout must not create an order")
}

func TestOrderRepositoryGetRecent(t *testing.T) {
	db := newTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	for i := 0; i < 3; i++ {
		require.NoError(t, cartRepo.Add(1, 1))
		_, err := cartRepo.Checkout(fmt.Sprintf("ref-%d", i))
		require.NoError(t, err)
	}

	orders, err := orderRepo.GetRecent(2)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Greater(t, orders[0].ID, orders[1].ID, "newest order first")
}

func TestProductRepository(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMProductRepository(db)

	products, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, products, 8)

	created := &models.Product{Name: "Test Rack", Price: 42.50, Stock: 3, Category: "Servers"}
	require.NoError(t, repo.Create(created))
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Rack", got.Name)

	_, err = repo.GetByID(99999)
	assert.Error(t, err)
}
