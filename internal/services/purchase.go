package services

import (
	"context"

	"github.com/sweetstack/sweet-shop-api/internal/logger"
	"github.com/sweetstack/sweet-shop-api/internal/models"
)

// PurchaseReader defines ledger query operations.
type PurchaseReader interface {
	GetByUserID(ctx context.Context, userID int64) ([]models.PurchaseDB, error)
	GetAll(ctx context.Context) ([]models.PurchaseWithUser, error)
}

// PurchaseService answers purchase-history queries.
type PurchaseService struct {
	reader PurchaseReader
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(reader PurchaseReader) *PurchaseService {
	return &PurchaseService{reader: reader}
}

// GetUserPurchases returns the user's purchase history, most recent first.
func (s *PurchaseService) GetUserPurchases(ctx context.Context, userID int64) ([]models.PurchaseDB, error) {
	purchases, err := s.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user purchases", "userID", userID, "error", err)
		return nil, err
	}
	return purchases, nil
}

// GetAllPurchases returns every purchase across all users, with the buyer's
// username where the user still exists, most recent first.
func (s *PurchaseService) GetAllPurchases(ctx context.Context) ([]models.PurchaseWithUser, error) {
	purchases, err := s.reader.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get all purchases", "error", err)
		return nil, err
	}
	return purchases, nil
}
