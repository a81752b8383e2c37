package models

import "time"

// PurchaseDB is an immutable ledger entry for a completed purchase.
// Sweet name, category and price are denormalized on purpose: history must
// survive later edits or deletion of the sweet.
type PurchaseDB struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	SweetID     int64     `json:"sweet_id" db:"sweet_id"`
	SweetName   string    `json:"sweet_name" db:"sweet_name"`     // Snapshot at purchase time
	Category    string    `json:"category" db:"category"`         // Snapshot at purchase time
	Price       float64   `json:"price" db:"price"`               // Unit price at purchase time
	Quantity    float64   `json:"quantity" db:"quantity"`         // Purchased quantity, > 0
	TotalAmount float64   `json:"total_amount" db:"total_amount"` // price * quantity
	PurchasedAt time.Time `json:"purchased_at" db:"purchased_at"`
}

// PurchaseWithUser is a ledger entry joined with the buyer's username.
// Username is nil when the user record no longer exists.
type PurchaseWithUser struct {
	PurchaseDB
	Username *string `json:"username" db:"username"`
}

// PurchaseEvent is published to Kafka after each successful purchase.
type PurchaseEvent struct {
	PurchaseID int64   `json:"purchase_id"`
	UserID     int64   `json:"user_id"`
	SweetID    int64   `json:"sweet_id"`
	SweetName  string  `json:"sweet_name"`
	Quantity   float64 `json:"quantity"`
	Total      float64 `json:"total"`
	Timestamp  int64   `json:"timestamp"`
}
