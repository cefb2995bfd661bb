package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	errorvalues "github.com/spendguard/spendguard/internal/error_values"
	"github.com/spendguard/spendguard/internal/repository/mocks"
	"github.com/spendguard/spendguard/internal/service"
	"github.com/spendguard/spendguard/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestLogPurchase(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	purchasesRepo := mocks.NewMockPurchasesRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)

	serv := service.NewPurchasesService(purchasesRepo, usersRepo)
	now := time.Now()
	serv.SetNowFunc(func() time.Time { return now })
	userID := uuid.New()
	purchaseID := uuid.New()
	ctx := context.Background()

	req := &service.LogPurchaseRequest{
		Name:     "Coffee beans",
		Amount:   decimal.RequireFromString("18.50"),
		Category: "food",
	}

	t.Run("logged under the threshold", func(t *testing.T) {
		profile := testProfile(0, 1, 0)
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
		purchasesRepo.EXPECT().Create(gomock.Any(), &entity.Purchase{
			UserID:   userID,
			Name:     req.Name,
			Amount:   req.Amount,
			Category: req.Category,
			Date:     now,
		}).Return(purchaseID, nil)
		expectedStats := profile.Stats
		expectedStats.TotalSpent = expectedStats.TotalSpent.Add(req.Amount)
		usersRepo.EXPECT().UpdateStats(gomock.Any(), userID, expectedStats).Return(nil)

		purchase, err := serv.Log(ctx, userID, req)
		assert.NoError(t, err)
		assert.Equal(t, purchaseID, purchase.ID)
	})

	t.Run("above the threshold refused", func(t *testing.T) {
		// Default impulse threshold is $50
		big := *req
		big.Amount = decimal.RequireFromString("120.00")
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(testProfile(0, 1, 0), nil)
		_, err := serv.Log(ctx, userID, &big)
		assert.ErrorIs(t, err, errorvalues.ErrCooldownRequired)
	})

	t.Run("exactly the threshold allowed", func(t *testing.T) {
		edge := *req
		edge.Amount = decimal.RequireFromString("50.00")
		profile := testProfile(0, 1, 0)
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
		purchasesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(purchaseID, nil)
		usersRepo.EXPECT().UpdateStats(gomock.Any(), userID, gomock.Any()).Return(nil)
		_, err := serv.Log(ctx, userID, &edge)
		assert.NoError(t, err)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		bad := *req
		bad.Amount = decimal.Zero
		_, err := serv.Log(ctx, userID, &bad)
		assert.Error(t, err)
	})

	t.Run("profile not found", func(t *testing.T) {
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, errorvalues.ErrProfileNotFound)
		_, err := serv.Log(ctx, userID, req)
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
	})
}

func TestGetUserPurchases(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	purchasesRepo := mocks.NewMockPurchasesRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)

	serv := service.NewPurchasesService(purchasesRepo, usersRepo)
	userID := uuid.New()
	ctx := context.Background()

	returned := []*entity.Purchase{
		{ID: uuid.New(), UserID: userID, Name: "Coffee beans", Amount: decimal.RequireFromString("18.50")},
		{ID: uuid.New(), UserID: userID, Name: "Notebook", Amount: decimal.RequireFromString("4.00")},
	}
	purchasesRepo.EXPECT().GetByUserID(gomock.Any(), userID, 10, 0).Return(returned, nil)

	purchases, err := serv.GetUserPurchases(ctx, userID, service.PaginationOpts{Limit: 10, Offset: 0})
	assert.NoError(t, err)
	assert.Equal(t, returned, purchases)
}
