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

func TestAddTaxItem(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	taxRepo := mocks.NewMockADHDTaxRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)

	serv := service.NewADHDTaxService(taxRepo, usersRepo)
	now := time.Now()
	serv.SetNowFunc(func() time.Time { return now })
	userID := uuid.New()
	itemID := uuid.New()
	ctx := context.Background()

	req := &service.AddTaxItemRequest{
		Type:        "late_fee",
		Amount:      decimal.RequireFromString("35.00"),
		Description: "Credit card payment missed by two days",
	}

	t.Run("item added and total bumped", func(t *testing.T) {
		profile := testProfile(0, 1, 0)
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
		taxRepo.EXPECT().Create(gomock.Any(), &entity.ADHDTaxItem{
			UserID:      userID,
			Type:        req.Type,
			Amount:      req.Amount,
			Description: req.Description,
			Date:        now,
		}).Return(itemID, nil)
		expectedStats := profile.Stats
		expectedStats.ADHDTaxTotal = expectedStats.ADHDTaxTotal.Add(req.Amount)
		usersRepo.EXPECT().UpdateStats(gomock.Any(), userID, expectedStats).Return(nil)

		item, err := serv.Add(ctx, userID, req)
		assert.NoError(t, err)
		assert.Equal(t, itemID, item.ID)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		bad := *req
		bad.Type = "vibes"
		_, err := serv.Add(ctx, userID, &bad)
		assert.Error(t, err)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		bad := *req
		bad.Amount = decimal.NewFromInt(-5)
		_, err := serv.Add(ctx, userID, &bad)
		assert.Error(t, err)
	})
}

func TestDeleteTaxItem(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	taxRepo := mocks.NewMockADHDTaxRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)

	serv := service.NewADHDTaxService(taxRepo, usersRepo)
	userID := uuid.New()
	itemID := uuid.New()
	ctx := context.Background()

	amount := decimal.RequireFromString("35.00")
	storedItem := func() *entity.ADHDTaxItem {
		return &entity.ADHDTaxItem{
			ID:     itemID,
			UserID: userID,
			Type:   "late_fee",
			Amount: amount,
		}
	}

	t.Run("deletion reverses the contribution", func(t *testing.T) {
		profile := testProfile(0, 1, 0)
		profile.Stats.ADHDTaxTotal = decimal.RequireFromString("95.00")
		taxRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(storedItem(), nil)
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
		taxRepo.EXPECT().Delete(gomock.Any(), itemID).Return(nil)
		expectedStats := profile.Stats
		expectedStats.ADHDTaxTotal = expectedStats.ADHDTaxTotal.Sub(amount)
		usersRepo.EXPECT().UpdateStats(gomock.Any(), userID, expectedStats).Return(nil)

		err := serv.Delete(ctx, itemID, userID)
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		taxRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(nil, errorvalues.ErrTaxItemNotFound)
		err := serv.Delete(ctx, itemID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrTaxItemNotFound)
	})

	t.Run("wrong owner", func(t *testing.T) {
		item := storedItem()
		item.UserID = uuid.New()
		taxRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(item, nil)
		err := serv.Delete(ctx, itemID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}
