package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetstack/sweet-shop-api/internal/database"
	"github.com/sweetstack/sweet-shop-api/internal/repositories"
	"github.com/sweetstack/sweet-shop-api/internal/services"
)

// TestSweetService_PurchaseFlow runs the purchase path against a real
// in-memory database instead of mocks: an oversized purchase must fail
// without touching stock, and a valid one must decrement stock and append
// exactly one ledger entry.
func TestSweetService_PurchaseFlow(t *testing.T) {
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(ctx, db))

	buyerID, err := repositories.NewUserWriteRepository(db).Save(ctx, "buyer", "buyer@example.com", "hash", "user")
	require.NoError(t, err)

	sweetRead := repositories.NewSweetReadRepository(db, nil)
	sweetWrite := repositories.NewSweetWriteRepository(db, nil)
	purchaseWrite := repositories.NewPurchaseWriteRepository(db, nil)
	purchaseRead := repositories.NewPurchaseReadRepository(db)

	svc := services.NewSweetService(sweetRead, sweetWrite, purchaseWrite, nil)

	sweet, err := svc.Create(ctx, "Test Sweet", "candy", 5.99, 10, nil, nil)
	require.NoError(t, err)

	t.Run("oversized purchase leaves stock untouched", func(t *testing.T) {
		_, err := svc.Purchase(ctx, sweet.ID, 1000, buyerID)
		assert.ErrorIs(t, err, services.ErrInsufficientStock)

		current, err := svc.GetByID(ctx, sweet.ID)
		require.NoError(t, err)
		assert.Equal(t, 10.0, current.Quantity)

		purchases, err := purchaseRead.GetByUserID(ctx, buyerID)
		require.NoError(t, err)
		assert.Empty(t, purchases)
	})

	t.Run("valid purchase decrements stock and appends the ledger", func(t *testing.T) {
		updated, err := svc.Purchase(ctx, sweet.ID, 2, buyerID)
		require.NoError(t, err)
		assert.Equal(t, 8.0, updated.Quantity)

		purchases, err := purchaseRead.GetByUserID(ctx, buyerID)
		require.NoError(t, err)
		require.Len(t, purchases, 1)
		assert.Equal(t, "Test Sweet", purchases[0].SweetName)
		assert.Equal(t, 2.0, purchases[0].Quantity)
		assert.InDelta(t, 11.98, purchases[0].TotalAmount, 1e-9)
	})

	t.Run("buying the exact remainder empties the shelf", func(t *testing.T) {
		updated, err := svc.Purchase(ctx, sweet.ID, 8, buyerID)
		require.NoError(t, err)
		assert.Equal(t, 0.0, updated.Quantity)

		_, err = svc.Purchase(ctx, sweet.ID, 1, buyerID)
		assert.ErrorIs(t, err, services.ErrInsufficientStock)
	})
}
