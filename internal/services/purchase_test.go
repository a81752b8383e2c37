package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sweetstack/sweet-shop-api/internal/models"
	"github.com/sweetstack/sweet-shop-api/internal/services"
)

func TestPurchaseService_GetUserPurchases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockPurchaseReader(ctrl)
	svc := services.NewPurchaseService(mockReader)

	t.Run("success", func(t *testing.T) {
		expected := []models.PurchaseDB{
			{ID: 2, UserID: 7, SweetName: "Ladoo", Quantity: 1, TotalAmount: 3},
			{ID: 1, UserID: 7, SweetName: "Gulab Jamun", Quantity: 2, TotalAmount: 11},
		}
		mockReader.EXPECT().
			GetByUserID(gomock.Any(), int64(7)).
			Return(expected, nil)

		purchases, err := svc.GetUserPurchases(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, expected, purchases)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUserID(gomock.Any(), int64(7)).
			Return(nil, errors.New("db error"))

		_, err := svc.GetUserPurchases(context.Background(), 7)
		assert.EqualError(t, err, "db error")
	})
}

func TestPurchaseService_GetAllPurchases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockPurchaseReader(ctrl)
	svc := services.NewPurchaseService(mockReader)

	username := "alice"
	expected := []models.PurchaseWithUser{
		{PurchaseDB: models.PurchaseDB{ID: 1, UserID: 7}, Username: &username},
	}
	mockReader.EXPECT().
		GetAll(gomock.Any()).
		Return(expected, nil)

	purchases, err := svc.GetAllPurchases(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, purchases)
}
