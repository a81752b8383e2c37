package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sweetstack/sweet-shop-api/internal/middlewares"
	"github.com/sweetstack/sweet-shop-api/internal/models"
)

// SweetPurchaser runs the purchase transaction.
type SweetPurchaser interface {
	Purchase(ctx context.Context, id int64, quantity float64, userID int64) (*models.SweetDB, error)
}

// SweetRestocker adds stock to a sweet.
type SweetRestocker interface {
	Restock(ctx context.Context, id int64, quantity float64) (*models.SweetDB, error)
}

// UserPurchasesGetter returns one user's purchase history.
type UserPurchasesGetter interface {
	GetUserPurchases(ctx context.Context, userID int64) ([]models.PurchaseDB, error)
}

// AllPurchasesGetter returns every purchase with usernames.
type AllPurchasesGetter interface {
	GetAllPurchases(ctx context.Context) ([]models.PurchaseWithUser, error)
}

// PurchaseSweetRequest represents the JSON body for a purchase.
// Quantity defaults to 1 when omitted.
// swagger:model PurchaseSweetRequest
type PurchaseSweetRequest struct {
	// Quantity to buy, fractional units allowed
	// example: 2.5
	Quantity *float64 `json:"quantity" validate:"omitempty,gt=0"`
}

// PurchaseSweetResponse represents a successful purchase
// swagger:model PurchaseSweetResponse
type PurchaseSweetResponse struct {
	// example: Purchase successful
	Message string `json:"message"`

	// The sweet with its decremented quantity
	Sweet *models.SweetDB `json:"sweet"`
}

// NewPurchaseSweetHandler returns an HTTP handler for purchasing a sweet.
// @Summary Purchase a sweet
// @Description Decrements stock and appends a purchase record. Fails when stock is insufficient.
// @Tags sweets
// @Accept json
// @Produce json
// @Param id path int true "Sweet ID"
// @Param purchaseSweetRequest body handlers.PurchaseSweetRequest false "Quantity to buy, defaults to 1"
// @Success 200 {object} handlers.PurchaseSweetResponse
// @Failure 400 {object} handlers.ErrorResponse "Insufficient quantity in stock"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 404 {object} handlers.ErrorResponse "Sweet not found"
// @Router /sweets/{id}/purchase [post]
// @Security BearerAuth
func NewPurchaseSweetHandler(svc SweetPurchaser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		id, err := parseIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid sweet id")
			return
		}

		var req PurchaseSweetRequest
		// An empty body means quantity 1; a malformed one is still a client error.
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		quantity := 1.0
		if req.Quantity != nil {
			quantity = *req.Quantity
		}

		sweet, err := svc.Purchase(r.Context(), id, quantity, claims.UserID)
		if err != nil {
			sweetError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PurchaseSweetResponse{
			Message: "Purchase successful",
			Sweet:   sweet,
		})
	}
}

// RestockSweetRequest represents the JSON body for a restock.
// swagger:model RestockSweetRequest
type RestockSweetRequest struct {
	// Quantity to add
	// required: true
	// example: 25
	Quantity *float64 `json:"quantity" validate:"required,gte=1"`
}

// RestockSweetResponse represents a successful restock
// swagger:model RestockSweetResponse
type RestockSweetResponse struct {
	// example: Restock successful
	Message string `json:"message"`

	// The sweet with its increased quantity
	Sweet *models.SweetDB `json:"sweet"`
}

// NewRestockSweetHandler returns an HTTP handler for restocking (admin only).
// @Summary Restock a sweet
// @Tags sweets
// @Accept json
// @Produce json
// @Param id path int true "Sweet ID"
// @Param restockSweetRequest body handlers.RestockSweetRequest true "Quantity to add"
// @Success 200 {object} handlers.RestockSweetResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid quantity"
// @Failure 404 {object} handlers.ErrorResponse "Sweet not found"
// @Router /sweets/{id}/restock [post]
// @Security BearerAuth
func NewRestockSweetHandler(svc SweetRestocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid sweet id")
			return
		}

		var req RestockSweetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		sweet, err := svc.Restock(r.Context(), id, *req.Quantity)
		if err != nil {
			sweetError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, RestockSweetResponse{
			Message: "Restock successful",
			Sweet:   sweet,
		})
	}
}

// NewUserPurchasesHandler returns an HTTP handler for the caller's own
// purchase history.
// @Summary Get own purchase history
// @Tags purchases
// @Produce json
// @Success 200 {array} models.PurchaseDB
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /purchases [get]
// @Security BearerAuth
func NewUserPurchasesHandler(svc UserPurchasesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		purchases, err := svc.GetUserPurchases(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, purchases)
	}
}

// NewAllPurchasesHandler returns an HTTP handler for the global purchase
// history (admin only).
// @Summary Get all purchases
// @Description Returns every purchase with the buyer's username, most recent first
// @Tags purchases
// @Produce json
// @Success 200 {array} models.PurchaseWithUser
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Router /purchases/all [get]
// @Security BearerAuth
func NewAllPurchasesHandler(svc AllPurchasesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		purchases, err := svc.GetAllPurchases(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, purchases)
	}
}
