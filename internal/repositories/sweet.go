package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sweetstack/sweet-shop-api/internal/logger"
	"github.com/sweetstack/sweet-shop-api/internal/models"
)

// SweetReadRepository handles catalog reads. Reads join the request
// transaction when one is present in the context: with a single SQLite
// connection a read outside the transaction would block on it forever, and
// the purchase re-read must see its own uncommitted decrement.
type SweetReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSweetReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SweetReadRepository {
	return &SweetReadRepository{db: db, txGetter: txGetter}
}

// queryer is the read subset of sqlx, satisfied by *sqlx.DB and *sqlx.Tx.
type queryer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func (r *SweetReadRepository) querier(ctx context.Context) queryer {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

const sweetColumns = `id, name, category, price, quantity, image_url, description, created_at, updated_at`

// GetByID returns the sweet with the given id, or nil when absent.
func (r *SweetReadRepository) GetByID(ctx context.Context, id int64) (*models.SweetDB, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets WHERE id = ?`

	var sweet models.SweetDB
	err := r.querier(ctx).GetContext(ctx, &sweet, query, id)

	logger.Log.Infow("sweet lookup",
		"query", query,
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &sweet, nil
}

// GetAll returns every sweet, newest first.
func (r *SweetReadRepository) GetAll(ctx context.Context) ([]models.SweetDB, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets ORDER BY created_at DESC, id DESC`

	sweets := []models.SweetDB{}
	err := r.querier(ctx).SelectContext(ctx, &sweets, query)

	logger.Log.Infow("sweet list",
		"query", query,
		"result", len(sweets),
		"error", err,
	)

	return sweets, err
}

// Search returns sweets matching every present filter, newest first.
// Absent filters impose no constraint.
func (r *SweetReadRepository) Search(ctx context.Context, params models.SweetSearchParams) ([]models.SweetDB, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets WHERE 1=1`
	args := []any{}

	if params.Name != nil {
		query += ` AND name LIKE ?`
		args = append(args, "%"+*params.Name+"%")
	}
	if params.Category != nil {
		query += ` AND category = ?`
		args = append(args, *params.Category)
	}
	if params.MinPrice != nil {
		query += ` AND price >= ?`
		args = append(args, *params.MinPrice)
	}
	if params.MaxPrice != nil {
		query += ` AND price <= ?`
		args = append(args, *params.MaxPrice)
	}

	query += ` ORDER BY created_at DESC, id DESC`

	sweets := []models.SweetDB{}
	err := r.querier(ctx).SelectContext(ctx, &sweets, query, args...)

	logger.Log.Infow("sweet search",
		"query", query,
		"args", args,
		"result", len(sweets),
		"error", err,
	)

	return sweets, err
}

// ExistsByName reports whether another sweet already uses the name.
// A non-nil excludeID skips that record, so renaming a sweet to its own
// name is not a conflict.
func (r *SweetReadRepository) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	query := `SELECT COUNT(*) FROM sweets WHERE name = ?`
	args := []any{name}
	if excludeID != nil {
		query += ` AND id != ?`
		args = append(args, *excludeID)
	}

	var count int
	err := r.querier(ctx).GetContext(ctx, &count, query, args...)

	logger.Log.Infow("sweet name check",
		"query", query,
		"args", args,
		"result", count,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SweetWriteRepository handles catalog writes. Mutations participate in the
// request transaction when one is present in the context.
type SweetWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSweetWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SweetWriteRepository {
	return &SweetWriteRepository{db: db, txGetter: txGetter}
}

func (r *SweetWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new sweet and returns its id.
func (r *SweetWriteRepository) Save(ctx context.Context, name, category string, price, quantity float64, imageURL, description *string) (int64, error) {
	const query = `
		INSERT INTO sweets (name, category, price, quantity, image_url, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, name, category, price, quantity, imageURL, description)

	var id int64
	if res != nil {
		id, _ = res.LastInsertId()
	}

	logger.Log.Infow("sweet insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, category, price, quantity},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites every mutable field of the sweet.
func (r *SweetWriteRepository) Update(ctx context.Context, id int64, name, category string, price, quantity float64, imageURL, description *string) error {
	const query = `
		UPDATE sweets
		SET name = ?, category = ?, price = ?, quantity = ?,
		    image_url = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, name, category, price, quantity, imageURL, description, id)

	logger.Log.Infow("sweet update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, name, category, price, quantity},
		"error", err,
	)

	return err
}

// Delete removes the sweet with the given id.
func (r *SweetWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM sweets WHERE id = ?`

	_, err := r.executor(ctx).ExecContext(ctx, query, id)

	logger.Log.Infow("sweet delete",
		"query", query,
		"args", []any{id},
		"error", err,
	)

	return err
}

// DecrementQuantity atomically subtracts quantity from stock, guarded so the
// result can never go negative. Two concurrent purchases of the same sweet
// cannot both pass the guard: the conditional update serializes them inside
// the database. Returns sql.ErrNoRows when stock is insufficient.
func (r *SweetWriteRepository) DecrementQuantity(ctx context.Context, id int64, quantity float64) error {
	const query = `
		UPDATE sweets
		SET quantity = quantity - ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND quantity >= ?
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, quantity, id, quantity)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("sweet decrement",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, quantity},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AddQuantity increases stock by quantity. No upper bound.
func (r *SweetWriteRepository) AddQuantity(ctx context.Context, id int64, quantity float64) error {
	const query = `
		UPDATE sweets
		SET quantity = quantity + ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, quantity, id)

	logger.Log.Infow("sweet restock",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, quantity},
		"error", err,
	)

	return err
}
