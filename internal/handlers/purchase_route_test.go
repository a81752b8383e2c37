package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetstack/sweet-shop-api/internal/database"
	"github.com/sweetstack/sweet-shop-api/internal/jwt"
	"github.com/sweetstack/sweet-shop-api/internal/middlewares"
	"github.com/sweetstack/sweet-shop-api/internal/repositories"
	"github.com/sweetstack/sweet-shop-api/internal/services"
)

// TestPurchaseRoute drives the purchase endpoint through the same stack the
// server assembles: auth middleware with a real token, the transaction
// middleware, and transaction-aware repositories against an in-memory
// database. The service re-reads the sweet after the decrement, so every
// layer has to share the single connection for the request to complete.
func TestPurchaseRoute(t *testing.T) {
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(ctx, db))

	userID, err := repositories.NewUserWriteRepository(db).Save(ctx, "buyer", "buyer@example.com", "hash", "user")
	require.NoError(t, err)

	tokens := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Minute))
	user, err := repositories.NewUserReadRepository(db).GetByID(ctx, userID)
	require.NoError(t, err)
	token, err := tokens.Generate(ctx, user)
	require.NoError(t, err)

	sweetReadRepo := repositories.NewSweetReadRepository(db, middlewares.GetTxFromContext)
	sweetWriteRepo := repositories.NewSweetWriteRepository(db, middlewares.GetTxFromContext)
	purchaseWriteRepo := repositories.NewPurchaseWriteRepository(db, middlewares.GetTxFromContext)
	purchaseReadRepo := repositories.NewPurchaseReadRepository(db)

	svc := services.NewSweetService(sweetReadRepo, sweetWriteRepo, purchaseWriteRepo, nil)

	sweet, err := svc.Create(ctx, "Kaju Katli", "Indian", 6.5, 10, nil, nil)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))
		r.With(middlewares.TxMiddleware(db)).
			Post("/api/sweets/{id}/purchase", NewPurchaseSweetHandler(svc))
	})

	purchase := func(body []byte) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sweets/"+strconv.FormatInt(sweet.ID, 10)+"/purchase", bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid purchase commits the decrement and the ledger entry", func(t *testing.T) {
		body, _ := json.Marshal(PurchaseSweetRequest{Quantity: f64Ptr(2)})
		rec := purchase(body)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp PurchaseSweetResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Purchase successful", resp.Message)
		assert.Equal(t, 8.0, resp.Sweet.Quantity)

		current, err := svc.GetByID(ctx, sweet.ID)
		require.NoError(t, err)
		assert.Equal(t, 8.0, current.Quantity)

		purchases, err := purchaseReadRepo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, purchases, 1)
		assert.Equal(t, "Kaju Katli", purchases[0].SweetName)
		assert.InDelta(t, 13.0, purchases[0].TotalAmount, 1e-9)
	})

	t.Run("insufficient stock rolls back untouched", func(t *testing.T) {
		body, _ := json.Marshal(PurchaseSweetRequest{Quantity: f64Ptr(1000)})
		rec := purchase(body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Insufficient quantity in stock"}`, rec.Body.String())

		current, err := svc.GetByID(ctx, sweet.ID)
		require.NoError(t, err)
		assert.Equal(t, 8.0, current.Quantity)

		purchases, err := purchaseReadRepo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, purchases, 1)
	})
}
