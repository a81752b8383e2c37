package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sweetstack/sweet-shop-api/internal/logger"
	"github.com/sweetstack/sweet-shop-api/internal/models"
	"github.com/sweetstack/sweet-shop-api/internal/services"
)

// SweetLister returns the whole catalog.
type SweetLister interface {
	GetAll(ctx context.Context) ([]models.SweetDB, error)
}

// SweetGetter returns one sweet by id.
type SweetGetter interface {
	GetByID(ctx context.Context, id int64) (*models.SweetDB, error)
}

// SweetSearcher filters the catalog.
type SweetSearcher interface {
	Search(ctx context.Context, params models.SweetSearchParams) ([]models.SweetDB, error)
}

// SweetCreator adds a sweet to the catalog.
type SweetCreator interface {
	Create(ctx context.Context, name, category string, price, quantity float64, imageURL, description *string) (*models.SweetDB, error)
}

// SweetUpdater applies a partial update to a sweet.
type SweetUpdater interface {
	Update(ctx context.Context, id int64, updates models.SweetUpdate) (*models.SweetDB, error)
}

// SweetDeleter removes a sweet.
type SweetDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// sweetError maps catalog service errors to HTTP responses.
func sweetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrSweetNotFound):
		writeError(w, http.StatusNotFound, "Sweet not found")
	case errors.Is(err, services.ErrSweetNameExists):
		writeError(w, http.StatusConflict, "Sweet with this name already exists")
	case errors.Is(err, services.ErrInsufficientStock):
		writeError(w, http.StatusBadRequest, "Insufficient quantity in stock")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// NewListSweetsHandler returns an HTTP handler listing the catalog.
// @Summary List sweets
// @Description Returns every sweet, newest first
// @Tags sweets
// @Produce json
// @Success 200 {array} models.SweetDB
// @Failure 401 {object} handlers.ErrorResponse "Access token required"
// @Router /sweets [get]
// @Security BearerAuth
func NewListSweetsHandler(svc SweetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sweets, err := svc.GetAll(r.Context())
		if err != nil {
			sweetError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sweets)
	}
}

// NewGetSweetHandler returns an HTTP handler fetching one sweet.
// @Summary Get a sweet
// @Tags sweets
// @Produce json
// @Param id path int true "Sweet ID"
// @Success 200 {object} models.SweetDB
// @Failure 404 {object} handlers.ErrorResponse "Sweet not found"
// @Router /sweets/{id} [get]
// @Security BearerAuth
func NewGetSweetHandler(svc SweetGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid sweet id")
			return
		}

		sweet, err := svc.GetByID(r.Context(), id)
		if err != nil {
			sweetError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sweet)
	}
}

// parseSearchParams reads the optional search filters from the query
// string. A malformed or negative price bound is a validation error.
func parseSearchParams(r *http.Request) (models.SweetSearchParams, string) {
	params := models.SweetSearchParams{}
	q := r.URL.Query()

	if name := q.Get("name"); name != "" {
		params.Name = &name
	}
	if category := q.Get("category"); category != "" {
		params.Category = &category
	}
	if raw := q.Get("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return params, "minPrice must be a positive number"
		}
		params.MinPrice = &v
	}
	if raw := q.Get("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return params, "maxPrice must be a positive number"
		}
		params.MaxPrice = &v
	}

	return params, ""
}

// NewSearchSweetsHandler returns an HTTP handler searching the catalog.
// @Summary Search sweets
// @Description Filters by name substring, exact category, and inclusive price bounds; filters combine with AND
// @Tags sweets
// @Produce json
// @Param name query string false "Name substring"
// @Param category query string false "Exact category"
// @Param minPrice query number false "Inclusive lower price bound"
// @Param maxPrice query number false "Inclusive upper price bound"
// @Success 200 {array} models.SweetDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid numeric filter"
// @Router /sweets/search [get]
// @Security BearerAuth
func NewSearchSweetsHandler(svc SweetSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, msg := parseSearchParams(r)
		if msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		sweets, err := svc.Search(r.Context(), params)
		if err != nil {
			sweetError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sweets)
	}
}

// CreateSweetRequest represents the JSON body for creating a sweet
// swagger:model CreateSweetRequest
type CreateSweetRequest struct {
	// Name, unique across the catalog
	// required: true
	// example: Gulab Jamun
	Name string `json:"name" validate:"required"`

	// Category label
	// required: true
	// example: Indian
	Category string `json:"category" validate:"required"`

	// Price per unit
	// required: true
	// example: 5.99
	Price *float64 `json:"price" validate:"required,gte=0"`

	// Initial stock, defaults to 0
	// example: 10
	Quantity *float64 `json:"quantity" validate:"omitempty,gte=0"`

	// Optional image URL
	ImageURL *string `json:"image_url"`

	// Optional description
	Description *string `json:"description"`
}

// NewCreateSweetHandler returns an HTTP handler creating a sweet (admin only).
// @Summary Create a sweet
// @Tags sweets
// @Accept json
// @Produce json
// @Param createSweetRequest body handlers.CreateSweetRequest true "Sweet to create"
// @Success 201 {object} models.SweetDB
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Failure 409 {object} handlers.ErrorResponse "Sweet with this name already exists"
// @Router /sweets [post]
// @Security BearerAuth
func NewCreateSweetHandler(svc SweetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSweetRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		quantity := 0.0
		if req.Quantity != nil {
			quantity = *req.Quantity
		}

		sweet, err := svc.Create(r.Context(), req.Name, req.Category, *req.Price, quantity, req.ImageURL, req.Description)
		if err != nil {
			sweetError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, sweet)
	}
}

// UpdateSweetRequest represents the JSON body for a partial sweet update.
// Absent fields keep their current values; an empty image URL or
// description clears the field.
// swagger:model UpdateSweetRequest
type UpdateSweetRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Category    *string  `json:"category" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Quantity    *float64 `json:"quantity" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url"`
	Description *string  `json:"description"`
}

// NewUpdateSweetHandler returns an HTTP handler updating a sweet (admin only).
// @Summary Update a sweet
// @Tags sweets
// @Accept json
// @Produce json
// @Param id path int true "Sweet ID"
// @Param updateSweetRequest body handlers.UpdateSweetRequest true "Fields to update"
// @Success 200 {object} models.SweetDB
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 404 {object} handlers.ErrorResponse "Sweet not found"
// @Failure 409 {object} handlers.ErrorResponse "Sweet with this name already exists"
// @Router /sweets/{id} [put]
// @Security BearerAuth
func NewUpdateSweetHandler(svc SweetUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid sweet id")
			return
		}

		var req UpdateSweetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		sweet, err := svc.Update(r.Context(), id, models.SweetUpdate{
			Name:        req.Name,
			Category:    req.Category,
			Price:       req.Price,
			Quantity:    req.Quantity,
			ImageURL:    req.ImageURL,
			Description: req.Description,
		})
		if err != nil {
			sweetError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sweet)
	}
}

// DeleteSweetResponse confirms a deletion
// swagger:model DeleteSweetResponse
type DeleteSweetResponse struct {
	// example: Sweet deleted successfully
	Message string `json:"message"`
}

// NewDeleteSweetHandler returns an HTTP handler deleting a sweet (admin only).
// @Summary Delete a sweet
// @Tags sweets
// @Produce json
// @Param id path int true "Sweet ID"
// @Success 200 {object} handlers.DeleteSweetResponse
// @Failure 404 {object} handlers.ErrorResponse "Sweet not found"
// @Router /sweets/{id} [delete]
// @Security BearerAuth
func NewDeleteSweetHandler(svc SweetDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid sweet id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			sweetError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, DeleteSweetResponse{Message: "Sweet deleted successfully"})
	}
}
