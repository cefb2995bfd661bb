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

func testProfile(points, level, streak int) *entity.Profile {
	return &entity.Profile{
		Stats: entity.UserStats{
			CurrentStreak:     streak,
			LongestStreak:     streak,
			TotalPointsEarned: points,
			CurrentLevel:      level,
			TotalSaved:        decimal.Zero,
			TotalSpent:        decimal.Zero,
			ADHDTaxTotal:      decimal.Zero,
		},
		Settings: entity.DefaultSettings(),
		Badges:   []string{},
	}
}

func TestAwardPoints(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	rewardsRepo := mocks.NewMockRewardsRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)

	serv := service.NewRewardsService(rewardsRepo, usersRepo)
	now := time.Now()
	serv.SetNowFunc(func() time.Time { return now })
	userID := uuid.New()
	ctx := context.Background()

	t.Run("plain grant without level change", func(t *testing.T) {
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(testProfile(100, 1, 0), nil)
		rewardsRepo.EXPECT().Append(gomock.Any(), &entity.Reward{
			UserID:      userID,
			Type:        entity.RewardPoints,
			Points:      5,
			EarnedAt:    now,
			Description: "Added item to wishlist",
			Source:      "wishlist_add",
		}).Return(uuid.New(), nil)
		usersRepo.EXPECT().UpdateStats(gomock.Any(), userID, gomock.Any()).Return(nil)

		stats, err := serv.AwardPoints(ctx, userID, 5, "Added item to wishlist", "wishlist_add")
		assert.NoError(t, err)
		assert.Equal(t, 105, stats.TotalPointsEarned)
		assert.Equal(t, 1, stats.CurrentLevel)
	})

	t.Run("grant crossing a level writes the bonus entry", func(t *testing.T) {
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(testProfile(280, 1, 0), nil)
		rewardsRepo.EXPECT().Append(gomock.Any(), &entity.Reward{
			UserID:      userID,
			Type:        entity.RewardPoints,
			Points:      50,
			EarnedAt:    now,
			Description: "Dismissed impulse",
			Source:      "wishlist_dismiss",
		}).Return(uuid.New(), nil)
		rewardsRepo.EXPECT().Append(gomock.Any(), &entity.Reward{
			UserID:      userID,
			Type:        entity.RewardPoints,
			Points:      100,
			EarnedAt:    now,
			Description: "Reached Level 2!",
			Source:      "level_up",
		}).Return(uuid.New(), nil)
		usersRepo.EXPECT().UpdateStats(gomock.Any(), userID, gomock.Any()).Return(nil)

		stats, err := serv.AwardPoints(ctx, userID, 50, "Dismissed impulse", "wishlist_dismiss")
		assert.NoError(t, err)
		// 280 + 50 + 100 bonus, and the bonus doesn't reach level 3
		assert.Equal(t, 430, stats.TotalPointsEarned)
		assert.Equal(t, 2, stats.CurrentLevel)
	})

	t.Run("non-positive grant rejected", func(t *testing.T) {
		_, err := serv.AwardPoints(ctx, userID, 0, "nothing", "test")
		assert.Error(t, err)
	})

	t.Run("profile not found", func(t *testing.T) {
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, errorvalues.ErrProfileNotFound)
		_, err := serv.AwardPoints(ctx, userID, 5, "desc", "test")
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
	})
}

func TestAwardBadge(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	rewardsRepo := mocks.NewMockRewardsRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)

	serv := service.NewRewardsService(rewardsRepo, usersRepo)
	now := time.Now()
	serv.SetNowFunc(func() time.Time { return now })
	userID := uuid.New()
	ctx := context.Background()

	t.Run("unknown badge", func(t *testing.T) {
		err := serv.AwardBadge(ctx, userID, "no-such-badge", "desc")
		assert.ErrorIs(t, err, errorvalues.ErrBadgeUnknown)
	})

	t.Run("already held is a no-op", func(t *testing.T) {
		profile := testProfile(100, 1, 3)
		profile.Badges = []string{entity.BadgeThreeDay}
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
		err := serv.AwardBadge(ctx, userID, entity.BadgeThreeDay, "Three days without impulse purchases")
		assert.NoError(t, err)
	})

	t.Run("fresh grant writes ledger entry, badge and bonus points", func(t *testing.T) {
		// Once before the grant and once inside the bonus accounting
		usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(testProfile(100, 1, 3), nil).Times(2)
		rewardsRepo.EXPECT().Append(gomock.Any(), &entity.Reward{
			UserID:      userID,
			Type:        entity.RewardBadge,
			BadgeID:     entity.BadgeThreeDay,
			EarnedAt:    now,
			Description: "Three days without impulse purchases",
			Source:      "achievement",
		}).Return(uuid.New(), nil)
		usersRepo.EXPECT().AddBadge(gomock.Any(), userID, entity.BadgeThreeDay).Return(nil)
		rewardsRepo.EXPECT().Append(gomock.Any(), &entity.Reward{
			UserID:      userID,
			Type:        entity.RewardPoints,
			Points:      100,
			EarnedAt:    now,
			Description: "Earned badge: Three days without impulse purchases",
			Source:      "badge_earned",
		}).Return(uuid.New(), nil)
		usersRepo.EXPECT().UpdateStats(gomock.Any(), userID, gomock.Any()).Return(nil)

		err := serv.AwardBadge(ctx, userID, entity.BadgeThreeDay, "Three days without impulse purchases")
		assert.NoError(t, err)
	})
}

func TestGetBadges(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	rewardsRepo := mocks.NewMockRewardsRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)

	serv := service.NewRewardsService(rewardsRepo, usersRepo)
	userID := uuid.New()
	ctx := context.Background()

	profile := testProfile(400, 2, 3)
	profile.Badges = []string{entity.BadgeThreeDay}
	usersRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)

	statuses, err := serv.GetBadges(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, statuses, len(entity.BadgeCatalogue))
	for _, st := range statuses {
		if st.ID == entity.BadgeThreeDay {
			assert.True(t, st.Earned)
		} else {
			assert.False(t, st.Earned, "badge %s should not be earned", st.ID)
		}
	}
}
