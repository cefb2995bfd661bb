package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	errorvalues "github.com/spendguard/spendguard/internal/error_values"
	repomocks "github.com/spendguard/spendguard/internal/repository/mocks"
	"github.com/spendguard/spendguard/internal/service"
	svcmocks "github.com/spendguard/spendguard/internal/service/mocks"
	"github.com/spendguard/spendguard/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestAddWishlistItem(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	wishlistRepo := repomocks.NewMockWishlistRepositoryI(ctrl)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	rewards := svcmocks.NewMockRewardsServiceI(ctrl)

	serv := service.NewWishlistService(wishlistRepo, usersRepo, rewards)
	now := time.Now()
	serv.SetNowFunc(func() time.Time { return now })
	userID := uuid.New()
	itemID := uuid.New()
	ctx := context.Background()

	price := decimal.RequireFromString("199.99")
	req := &service.AddWishlistRequest{
		Name:     "Mechanical keyboard",
		Price:    price,
		Category: "electronics",
		MoodTag:  "bored",
	}

	t.Run("item created with snapshotted cooldown", func(t *testing.T) {
		profile := testProfile(0, 1, 0)
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
		wishlistRepo.EXPECT().Create(gomock.Any(), &entity.WishlistItem{
			UserID:         userID,
			Name:           req.Name,
			Price:          price,
			Category:       req.Category,
			MoodTag:        req.MoodTag,
			AddedAt:        now,
			CooldownEndsAt: now.Add(48 * time.Hour),
			Status:         entity.StatusCoolingDown,
		}).Return(itemID, nil)
		stats := profile.Stats
		rewards.EXPECT().
			AwardPoints(gomock.Any(), userID, 5, "Added item to wishlist", "wishlist_add").
			Return(&stats, nil)

		item, err := serv.Add(ctx, userID, req)
		assert.NoError(t, err)
		assert.Equal(t, itemID, item.ID)
		assert.Equal(t, entity.StatusCoolingDown, item.Status)
		assert.Equal(t, now.Add(48*time.Hour), item.CooldownEndsAt)
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		bad := *req
		bad.Price = decimal.Zero
		_, err := serv.Add(ctx, userID, &bad)
		assert.Error(t, err)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		bad := *req
		bad.Category = "yachts"
		_, err := serv.Add(ctx, userID, &bad)
		assert.Error(t, err)
	})

	t.Run("profile not found", func(t *testing.T) {
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, errorvalues.ErrProfileNotFound)
		_, err := serv.Add(ctx, userID, req)
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
	})
}

func TestPurchaseWishlistItem(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	wishlistRepo := repomocks.NewMockWishlistRepositoryI(ctrl)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	rewards := svcmocks.NewMockRewardsServiceI(ctrl)

	serv := service.NewWishlistService(wishlistRepo, usersRepo, rewards)
	now := time.Now()
	serv.SetNowFunc(func() time.Time { return now })
	userID := uuid.New()
	itemID := uuid.New()
	ctx := context.Background()

	price := decimal.RequireFromString("180.00")
	readyItem := func() *entity.WishlistItem {
		return &entity.WishlistItem{
			ID:             itemID,
			UserID:         userID,
			Name:           "Mechanical keyboard",
			Price:          price,
			Category:       "electronics",
			AddedAt:        now.Add(-49 * time.Hour),
			CooldownEndsAt: now.Add(-time.Hour),
			Status:         entity.StatusReadyToReview,
		}
	}

	t.Run("purchase resets streak and records spending", func(t *testing.T) {
		profile := testProfile(100, 1, 4)
		wishlistRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(readyItem(), nil)
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)

		expectedStats := profile.Stats
		expectedStats.TotalSpent = expectedStats.TotalSpent.Add(price)
		expectedStats.CurrentStreak = 0
		expectedItem := readyItem()
		expectedItem.Status = entity.StatusPurchased
		expectedItem.PurchasedAt = &now
		wishlistRepo.EXPECT().FinalizePurchase(gomock.Any(), expectedItem, &entity.Purchase{
			UserID:     userID,
			Name:       "Mechanical keyboard",
			Amount:     price,
			Category:   "electronics",
			Date:       now,
			WasImpulse: true,
		}, expectedStats).Return(nil)
		stats := expectedStats
		rewards.EXPECT().
			AwardPoints(gomock.Any(), userID, 20, "Completed cooldown before purchase", "cooldown_complete").
			Return(&stats, nil)

		item, err := serv.Purchase(ctx, itemID, userID)
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusPurchased, item.Status)
		assert.NotNil(t, item.PurchasedAt)
	})

	t.Run("item not found", func(t *testing.T) {
		wishlistRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(nil, errorvalues.ErrItemNotFound)
		_, err := serv.Purchase(ctx, itemID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrItemNotFound)
	})

	t.Run("wrong owner", func(t *testing.T) {
		item := readyItem()
		item.UserID = uuid.New()
		wishlistRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(item, nil)
		_, err := serv.Purchase(ctx, itemID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})

	t.Run("still cooling down", func(t *testing.T) {
		item := readyItem()
		item.Status = entity.StatusCoolingDown
		wishlistRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(item, nil)
		_, err := serv.Purchase(ctx, itemID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrItemNotReady)
	})

	t.Run("already finalized", func(t *testing.T) {
		item := readyItem()
		item.Status = entity.StatusDismissed
		wishlistRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(item, nil)
		_, err := serv.Purchase(ctx, itemID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrItemNotReady)
	})
}

func TestDismissWishlistItem(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	wishlistRepo := repomocks.NewMockWishlistRepositoryI(ctrl)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	rewards := svcmocks.NewMockRewardsServiceI(ctrl)

	serv := service.NewWishlistService(wishlistRepo, usersRepo, rewards)
	now := time.Now()
	serv.SetNowFunc(func() time.Time { return now })
	userID := uuid.New()
	itemID := uuid.New()
	ctx := context.Background()

	price := decimal.RequireFromString("180.00")
	readyItem := func() *entity.WishlistItem {
		return &entity.WishlistItem{
			ID:             itemID,
			UserID:         userID,
			Name:           "Mechanical keyboard",
			Price:          price,
			Category:       "electronics",
			AddedAt:        now.Add(-49 * time.Hour),
			CooldownEndsAt: now.Add(-time.Hour),
			Status:         entity.StatusReadyToReview,
		}
	}
	dismissDescription := fmt.Sprintf("Dismissed %q and saved $%s", "Mechanical keyboard", price.StringFixed(2))

	t.Run("dismissal bumps streak and savings", func(t *testing.T) {
		profile := testProfile(100, 1, 1)
		wishlistRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(readyItem(), nil)
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)

		expectedStats := profile.Stats
		expectedStats.TotalSaved = expectedStats.TotalSaved.Add(price)
		expectedStats.CurrentStreak = 2
		expectedStats.LongestStreak = 2
		expectedItem := readyItem()
		expectedItem.Status = entity.StatusDismissed
		expectedItem.DismissedAt = &now
		expectedItem.DismissReason = "too expensive"
		wishlistRepo.EXPECT().FinalizeDismissal(gomock.Any(), expectedItem, expectedStats).Return(nil)
		stats := expectedStats
		rewards.EXPECT().
			AwardPoints(gomock.Any(), userID, 50, dismissDescription, "wishlist_dismiss").
			Return(&stats, nil)

		item, err := serv.Dismiss(ctx, itemID, userID, "too expensive")
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusDismissed, item.Status)
		assert.Equal(t, "too expensive", item.DismissReason)
	})

	t.Run("third dismissal in a row grants the streak badge", func(t *testing.T) {
		profile := testProfile(100, 1, 2)
		wishlistRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(readyItem(), nil)
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
		wishlistRepo.EXPECT().FinalizeDismissal(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		stats := profile.Stats
		rewards.EXPECT().
			AwardPoints(gomock.Any(), userID, 50, dismissDescription, "wishlist_dismiss").
			Return(&stats, nil)
		rewards.EXPECT().
			AwardBadge(gomock.Any(), userID, entity.BadgeThreeDay, "Three days without impulse purchases").
			Return(nil)

		_, err := serv.Dismiss(ctx, itemID, userID, "")
		assert.NoError(t, err)
	})

	t.Run("dismissal carrying savings over the threshold grants the savings badge", func(t *testing.T) {
		profile := testProfile(100, 1, 4)
		profile.Stats.TotalSaved = decimal.RequireFromString("450.00")
		wishlistRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(readyItem(), nil)
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
		wishlistRepo.EXPECT().FinalizeDismissal(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		stats := profile.Stats
		rewards.EXPECT().
			AwardPoints(gomock.Any(), userID, 50, dismissDescription, "wishlist_dismiss").
			Return(&stats, nil)
		rewards.EXPECT().
			AwardBadge(gomock.Any(), userID, entity.BadgeSaverSupreme, "Saved $500 by dismissing impulses").
			Return(nil)

		_, err := serv.Dismiss(ctx, itemID, userID, "")
		assert.NoError(t, err)
	})

	t.Run("not ready", func(t *testing.T) {
		item := readyItem()
		item.Status = entity.StatusPurchased
		wishlistRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(item, nil)
		_, err := serv.Dismiss(ctx, itemID, userID, "")
		assert.ErrorIs(t, err, errorvalues.ErrItemNotReady)
	})
}

func TestDeleteWishlistItem(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	wishlistRepo := repomocks.NewMockWishlistRepositoryI(ctrl)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	rewards := svcmocks.NewMockRewardsServiceI(ctrl)

	serv := service.NewWishlistService(wishlistRepo, usersRepo, rewards)
	userID := uuid.New()
	itemID := uuid.New()
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		wishlistRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(&entity.WishlistItem{
			ID:     itemID,
			UserID: userID,
			Status: entity.StatusCoolingDown,
		}, nil)
		wishlistRepo.EXPECT().Delete(gomock.Any(), itemID).Return(nil)
		err := serv.Delete(ctx, itemID, userID)
		assert.NoError(t, err)
	})

	t.Run("wrong owner", func(t *testing.T) {
		wishlistRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(&entity.WishlistItem{
			ID:     itemID,
			UserID: uuid.New(),
			Status: entity.StatusCoolingDown,
		}, nil)
		err := serv.Delete(ctx, itemID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})

	t.Run("not found", func(t *testing.T) {
		wishlistRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(nil, errorvalues.ErrItemNotFound)
		err := serv.Delete(ctx, itemID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrItemNotFound)
	})
}

func TestSweepCooldowns(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	wishlistRepo := repomocks.NewMockWishlistRepositoryI(ctrl)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	rewards := svcmocks.NewMockRewardsServiceI(ctrl)

	serv := service.NewWishlistService(wishlistRepo, usersRepo, rewards)
	now := time.Now()
	ctx := context.Background()

	t.Run("expired items moved to review", func(t *testing.T) {
		wishlistRepo.EXPECT().MarkReady(gomock.Any(), now).Return(int64(3), nil)
		count, err := serv.SweepCooldowns(ctx, now)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("nothing expired", func(t *testing.T) {
		wishlistRepo.EXPECT().MarkReady(gomock.Any(), now).Return(int64(0), nil)
		count, err := serv.SweepCooldowns(ctx, now)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}
