package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sweetstack/sweet-shop-api/internal/jwt"
	"github.com/sweetstack/sweet-shop-api/internal/models"
	"github.com/sweetstack/sweet-shop-api/internal/services"
)

func TestPurchaseSweetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &jwt.Claims{UserID: 7, Username: "alice", Role: models.RoleUser}

	newRouter := func(svc SweetPurchaser) http.Handler {
		r := chi.NewRouter()
		r.Method(http.MethodPost, "/api/sweets/{id}/purchase",
			authenticated(ctrl, claims, NewPurchaseSweetHandler(svc)))
		return r
	}

	t.Run("empty body buys one unit", func(t *testing.T) {
		mockSvc := NewMockSweetPurchaser(ctrl)
		mockSvc.EXPECT().
			Purchase(gomock.Any(), int64(5), 1.0, int64(7)).
			Return(&models.SweetDB{ID: 5, Name: "Gulab Jamun", Quantity: 9}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sweets/5/purchase", nil)
		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp PurchaseSweetResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Purchase successful", resp.Message)
		assert.Equal(t, 9.0, resp.Sweet.Quantity)
	})

	t.Run("explicit fractional quantity", func(t *testing.T) {
		mockSvc := NewMockSweetPurchaser(ctrl)
		mockSvc.EXPECT().
			Purchase(gomock.Any(), int64(5), 2.5, int64(7)).
			Return(&models.SweetDB{ID: 5, Quantity: 7.5}, nil)

		body, _ := json.Marshal(PurchaseSweetRequest{Quantity: f64Ptr(2.5)})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sweets/5/purchase", bytes.NewBuffer(body))
		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		mockSvc := NewMockSweetPurchaser(ctrl)
		mockSvc.EXPECT().
			Purchase(gomock.Any(), int64(5), 1000.0, int64(7)).
			Return(nil, services.ErrInsufficientStock)

		body, _ := json.Marshal(PurchaseSweetRequest{Quantity: f64Ptr(1000)})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sweets/5/purchase", bytes.NewBuffer(body))
		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Insufficient quantity in stock"}`, rec.Body.String())
	})

	t.Run("sweet not found", func(t *testing.T) {
		mockSvc := NewMockSweetPurchaser(ctrl)
		mockSvc.EXPECT().
			Purchase(gomock.Any(), int64(99), 1.0, int64(7)).
			Return(nil, services.ErrSweetNotFound)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sweets/99/purchase", nil)
		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("zero quantity fails validation", func(t *testing.T) {
		mockSvc := NewMockSweetPurchaser(ctrl)

		body, _ := json.Marshal(PurchaseSweetRequest{Quantity: f64Ptr(0)})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sweets/5/purchase", bytes.NewBuffer(body))
		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Validation failed", resp.Error)
	})

	t.Run("without auth context", func(t *testing.T) {
		mockSvc := NewMockSweetPurchaser(ctrl)

		r := chi.NewRouter()
		r.Post("/api/sweets/{id}/purchase", NewPurchaseSweetHandler(mockSvc))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sweets/5/purchase", nil)
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Authentication required"}`, rec.Body.String())
	})
}

func TestRestockSweetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newRouter := func(svc SweetRestocker) http.Handler {
		r := chi.NewRouter()
		r.Post("/api/sweets/{id}/restock", NewRestockSweetHandler(svc))
		return r
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockSweetRestocker(ctrl)
		mockSvc.EXPECT().
			Restock(gomock.Any(), int64(5), 25.0).
			Return(&models.SweetDB{ID: 5, Quantity: 28}, nil)

		body, _ := json.Marshal(RestockSweetRequest{Quantity: f64Ptr(25)})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sweets/5/restock", bytes.NewBuffer(body))
		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp RestockSweetResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Restock successful", resp.Message)
		assert.Equal(t, 28.0, resp.Sweet.Quantity)
	})

	t.Run("missing quantity fails validation", func(t *testing.T) {
		mockSvc := NewMockSweetRestocker(ctrl)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sweets/5/restock", bytes.NewBufferString(`{}`))
		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("sweet not found", func(t *testing.T) {
		mockSvc := NewMockSweetRestocker(ctrl)
		mockSvc.EXPECT().
			Restock(gomock.Any(), int64(99), 25.0).
			Return(nil, services.ErrSweetNotFound)

		body, _ := json.Marshal(RestockSweetRequest{Quantity: f64Ptr(25)})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sweets/99/restock", bytes.NewBuffer(body))
		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUserPurchasesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &jwt.Claims{UserID: 7, Username: "alice", Role: models.RoleUser}

	t.Run("returns own history", func(t *testing.T) {
		mockSvc := NewMockUserPurchasesGetter(ctrl)
		mockSvc.EXPECT().
			GetUserPurchases(gomock.Any(), int64(7)).
			Return([]models.PurchaseDB{
				{ID: 2, UserID: 7, SweetName: "Ladoo"},
				{ID: 1, UserID: 7, SweetName: "Gulab Jamun"},
			}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/purchases", nil)
		authenticated(ctrl, claims, NewUserPurchasesHandler(mockSvc)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var purchases []models.PurchaseDB
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &purchases))
		assert.Len(t, purchases, 2)
	})

	t.Run("without auth context", func(t *testing.T) {
		mockSvc := NewMockUserPurchasesGetter(ctrl)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/purchases", nil)
		NewUserPurchasesHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAllPurchasesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	username := "alice"
	mockSvc := NewMockAllPurchasesGetter(ctrl)
	mockSvc.EXPECT().
		GetAllPurchases(gomock.Any()).
		Return([]models.PurchaseWithUser{
			{PurchaseDB: models.PurchaseDB{ID: 1, UserID: 7, SweetName: "Gulab Jamun"}, Username: &username},
		}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/purchases/all", nil)
	NewAllPurchasesHandler(mockSvc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var purchases []models.PurchaseWithUser
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &purchases))
	assert.Len(t, purchases, 1)
	assert.Equal(t, "alice", *purchases[0].Username)
}
