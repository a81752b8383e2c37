package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sweetstack/sweet-shop-api/internal/logger"
	"github.com/sweetstack/sweet-shop-api/internal/models"
)

// PurchaseWriteRepository appends ledger entries. The ledger is append-only:
// there is no update or delete path.
type PurchaseWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPurchaseWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PurchaseWriteRepository {
	return &PurchaseWriteRepository{db: db, txGetter: txGetter}
}

// Save appends a purchase record and returns its id. Name, category and
// price are the sweet's pre-purchase values.
func (r *PurchaseWriteRepository) Save(ctx context.Context, userID, sweetID int64, sweetName, category string, price, quantity, totalAmount float64) (int64, error) {
	const query = `
		INSERT INTO purchases (user_id, sweet_id, sweet_name, category, price, quantity, total_amount)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, userID, sweetID, sweetName, category, price, quantity, totalAmount)

	var id int64
	if res != nil {
		id, _ = res.LastInsertId()
	}

	logger.Log.Infow("purchase insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, sweetID, sweetName, quantity, totalAmount},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}

// PurchaseReadRepository handles ledger queries.
type PurchaseReadRepository struct {
	db *sqlx.DB
}

func NewPurchaseReadRepository(db *sqlx.DB) *PurchaseReadRepository {
	return &PurchaseReadRepository{db: db}
}

// GetByUserID returns the user's purchases, most recent first.
func (r *PurchaseReadRepository) GetByUserID(ctx context.Context, userID int64) ([]models.PurchaseDB, error) {
	const query = `
		SELECT id, user_id, sweet_id, sweet_name, category, price, quantity, total_amount, purchased_at
		FROM purchases
		WHERE user_id = ?
		ORDER BY purchased_at DESC, id DESC
	`

	purchases := []models.PurchaseDB{}
	err := r.db.SelectContext(ctx, &purchases, query, userID)

	logger.Log.Infow("purchase list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(purchases),
		"error", err,
	)

	return purchases, err
}

// GetAll returns every purchase with the buyer's username, most recent
// first. The LEFT JOIN keeps entries whose user was since deleted; their
// username comes back null.
func (r *PurchaseReadRepository) GetAll(ctx context.Context) ([]models.PurchaseWithUser, error) {
	const query = `
		SELECT p.id, p.user_id, p.sweet_id, p.sweet_name, p.category, p.price,
		       p.quantity, p.total_amount, p.purchased_at, u.username
		FROM purchases p
		LEFT JOIN users u ON p.user_id = u.id
		ORDER BY p.purchased_at DESC, p.id DESC
	`

	purchases := []models.PurchaseWithUser{}
	err := r.db.SelectContext(ctx, &purchases, query)

	logger.Log.Infow("purchase list all",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(purchases),
		"error", err,
	)

	return purchases, err
}
