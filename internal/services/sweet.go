package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sweetstack/sweet-shop-api/internal/logger"
	"github.com/sweetstack/sweet-shop-api/internal/models"
)

var (
	ErrSweetNotFound     = errors.New("sweet not found")
	ErrSweetNameExists   = errors.New("sweet with this name already exists")
	ErrInsufficientStock = errors.New("insufficient quantity in stock")
)

// SweetReader defines catalog read operations.
type SweetReader interface {
	GetByID(ctx context.Context, id int64) (*models.SweetDB, error)
	GetAll(ctx context.Context) ([]models.SweetDB, error)
	Search(ctx context.Context, params models.SweetSearchParams) ([]models.SweetDB, error)
	ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error)
}

// SweetWriter defines catalog write operations.
type SweetWriter interface {
	Save(ctx context.Context, name, category string, price, quantity float64, imageURL, description *string) (int64, error)
	Update(ctx context.Context, id int64, name, category string, price, quantity float64, imageURL, description *string) error
	Delete(ctx context.Context, id int64) error
	DecrementQuantity(ctx context.Context, id int64, quantity float64) error
	AddQuantity(ctx context.Context, id int64, quantity float64) error
}

// PurchaseWriter appends entries to the purchase ledger.
type PurchaseWriter interface {
	Save(ctx context.Context, userID, sweetID int64, sweetName, category string, price, quantity, totalAmount float64) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// SweetService handles the catalog and the purchase transaction.
type SweetService struct {
	reader       SweetReader
	writer       SweetWriter
	purchaseRepo PurchaseWriter
	kafkaWriter  KafkaWriter
}

// NewSweetService creates a new SweetService. kafkaWriter may be nil, in
// which case purchase events are not published.
func NewSweetService(reader SweetReader, writer SweetWriter, purchaseRepo PurchaseWriter, kafkaWriter KafkaWriter) *SweetService {
	return &SweetService{
		reader:       reader,
		writer:       writer,
		purchaseRepo: purchaseRepo,
		kafkaWriter:  kafkaWriter,
	}
}

// Create adds a sweet to the catalog. Name must be unique.
func (s *SweetService) Create(ctx context.Context, name, category string, price, quantity float64, imageURL, description *string) (*models.SweetDB, error) {
	exists, err := s.reader.ExistsByName(ctx, name, nil)
	if err != nil {
		logger.Log.Errorw("failed to check sweet name", "name", name, "error", err)
		return nil, err
	}
	if exists {
		return nil, ErrSweetNameExists
	}

	id, err := s.writer.Save(ctx, name, category, price, quantity, imageURL, description)
	if err != nil {
		logger.Log.Errorw("failed to save sweet", "name", name, "error", err)
		return nil, err
	}

	return s.mustGet(ctx, id)
}

// GetAll returns the whole catalog, newest first.
func (s *SweetService) GetAll(ctx context.Context) ([]models.SweetDB, error) {
	return s.reader.GetAll(ctx)
}

// GetByID returns one sweet or ErrSweetNotFound.
func (s *SweetService) GetByID(ctx context.Context, id int64) (*models.SweetDB, error) {
	sweet, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sweet == nil {
		return nil, ErrSweetNotFound
	}
	return sweet, nil
}

// Search filters the catalog by the present parameters.
func (s *SweetService) Search(ctx context.Context, params models.SweetSearchParams) ([]models.SweetDB, error) {
	return s.reader.Search(ctx, params)
}

// Update applies a partial update. Renaming enforces name uniqueness,
// excluding the sweet's own record so a no-op rename is allowed.
func (s *SweetService) Update(ctx context.Context, id int64, updates models.SweetUpdate) (*models.SweetDB, error) {
	existing, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrSweetNotFound
	}

	if updates.Name != nil && *updates.Name != existing.Name {
		exists, err := s.reader.ExistsByName(ctx, *updates.Name, &id)
		if err != nil {
			logger.Log.Errorw("failed to check sweet name", "name", *updates.Name, "error", err)
			return nil, err
		}
		if exists {
			return nil, ErrSweetNameExists
		}
	}

	merged := mergeSweetUpdates(existing, updates)
	if err := s.writer.Update(ctx, id, merged.Name, merged.Category, merged.Price, merged.Quantity, merged.ImageURL, merged.Description); err != nil {
		logger.Log.Errorw("failed to update sweet", "id", id, "error", err)
		return nil, err
	}

	return s.mustGet(ctx, id)
}

// Delete removes a sweet from the catalog. Ledger entries referencing it
// keep their snapshots.
func (s *SweetService) Delete(ctx context.Context, id int64) error {
	sweet, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sweet == nil {
		return ErrSweetNotFound
	}
	return s.writer.Delete(ctx, id)
}

// Purchase decrements stock and appends a ledger entry, then returns the
// sweet with its new quantity. The decrement is a single conditional update,
// so stock can never go negative even under concurrent purchases; buying
// exactly the remaining stock succeeds and leaves zero. The ledger snapshot
// records name, category and price as they were before the decrement.
func (s *SweetService) Purchase(ctx context.Context, id int64, quantity float64, userID int64) (*models.SweetDB, error) {
	sweet, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sweet == nil {
		return nil, ErrSweetNotFound
	}

	if err := s.writer.DecrementQuantity(ctx, id, quantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsufficientStock
		}
		logger.Log.Errorw("failed to decrement stock", "id", id, "quantity", quantity, "error", err)
		return nil, err
	}

	total := sweet.Price * quantity
	purchaseID, err := s.purchaseRepo.Save(ctx, userID, sweet.ID, sweet.Name, sweet.Category, sweet.Price, quantity, total)
	if err != nil {
		logger.Log.Errorw("failed to record purchase", "sweetID", id, "userID", userID, "error", err)
		return nil, err
	}

	updated, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publishPurchase(ctx, models.PurchaseEvent{
		PurchaseID: purchaseID,
		UserID:     userID,
		SweetID:    sweet.ID,
		SweetName:  sweet.Name,
		Quantity:   quantity,
		Total:      total,
		Timestamp:  time.Now().Unix(),
	})

	return updated, nil
}

// Restock adds quantity to stock. No upper bound.
func (s *SweetService) Restock(ctx context.Context, id int64, quantity float64) (*models.SweetDB, error) {
	sweet, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sweet == nil {
		return nil, ErrSweetNotFound
	}

	if err := s.writer.AddQuantity(ctx, id, quantity); err != nil {
		logger.Log.Errorw("failed to restock sweet", "id", id, "quantity", quantity, "error", err)
		return nil, err
	}

	return s.mustGet(ctx, id)
}

// mustGet re-reads a sweet that is expected to exist.
func (s *SweetService) mustGet(ctx context.Context, id int64) (*models.SweetDB, error) {
	sweet, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sweet == nil {
		return nil, ErrSweetNotFound
	}
	return sweet, nil
}

// publishPurchase publishes a purchase event to Kafka. Best effort: a
// publish failure never fails the purchase.
func (s *SweetService) publishPurchase(ctx context.Context, event models.PurchaseEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "purchase_id", event.PurchaseID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal purchase event", "purchase_id", event.PurchaseID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.PurchaseID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish purchase event", "purchase_id", event.PurchaseID, "error", err)
	} else {
		logger.Log.Infow("purchase event published", "purchase_id", event.PurchaseID, "total", event.Total)
	}
}

// mergeSweetUpdates overlays the present update fields on the existing
// record. An explicitly empty image URL or description clears the field.
func mergeSweetUpdates(existing *models.SweetDB, updates models.SweetUpdate) *models.SweetDB {
	merged := *existing

	if updates.Name != nil {
		merged.Name = *updates.Name
	}
	if updates.Category != nil {
		merged.Category = *updates.Category
	}
	if updates.Price != nil {
		merged.Price = *updates.Price
	}
	if updates.Quantity != nil {
		merged.Quantity = *updates.Quantity
	}
	if updates.ImageURL != nil {
		if *updates.ImageURL == "" {
			merged.ImageURL = nil
		} else {
			merged.ImageURL = updates.ImageURL
		}
	}
	if updates.Description != nil {
		if *updates.Description == "" {
			merged.Description = nil
		} else {
			merged.Description = updates.Description
		}
	}

	return &merged
}
