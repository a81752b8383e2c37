package models

import "time"

// SweetDB represents a catalog item in the database.
// Quantity is fractional: stock is tracked in continuous units (e.g. kilograms).
type SweetDB struct {
	ID          int64     `json:"id" db:"id"`                   // Primary key
	Name        string    `json:"name" db:"name"`               // Unique name
	Category    string    `json:"category" db:"category"`       // Free-text category label
	Price       float64   `json:"price" db:"price"`             // Price per unit, non-negative
	Quantity    float64   `json:"quantity" db:"quantity"`       // Stock on hand, never negative
	ImageURL    *string   `json:"image_url" db:"image_url"`     // Optional image URL
	Description *string   `json:"description" db:"description"` // Optional description
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// SweetUpdate carries a partial update: nil fields keep their current value.
type SweetUpdate struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Quantity    *float64 `json:"quantity"`
	ImageURL    *string  `json:"image_url"`
	Description *string  `json:"description"`
}

// SweetSearchParams are independent optional filters combined with AND.
// Nil fields impose no constraint.
type SweetSearchParams struct {
	Name     *string  // substring match
	Category *string  // exact match
	MinPrice *float64 // inclusive lower bound
	MaxPrice *float64 // inclusive upper bound
}
