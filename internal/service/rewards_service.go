package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/spendguard/spendguard/internal/error_values"
	"github.com/spendguard/spendguard/internal/observability"
	"github.com/spendguard/spendguard/internal/repository"
	"github.com/spendguard/spendguard/pkg/entity"
)

type RewardsService struct {
	rewardsRepo repository.RewardsRepositoryI
	usersRepo   repository.UsersRepositoryI
	now         func() time.Time
}

func NewRewardsService(rewardsRepo repository.RewardsRepositoryI, usersRepo repository.UsersRepositoryI) *RewardsService {
	if rewardsRepo == nil || usersRepo == nil {
		log.Fatal("on rewards service provided nil repos")
	}
	return &RewardsService{
		rewardsRepo: rewardsRepo,
		usersRepo:   usersRepo,
		now:         time.Now,
	}
}

// SetNowFunc replaces the clock. Used by tests for deterministic timestamps.
func (rs *RewardsService) SetNowFunc(now func() time.Time) {
	rs.now = now
}

type pointsGrant struct {
	points      int
	description string
	source      string
}

func (rs *RewardsService) AwardPoints(ctx context.Context, uid uuid.UUID, points int, description, source string) (*entity.UserStats, error) {
	if points <= 0 {
		return nil, errors.New("points grant must be positive")
	}
	profile, err := rs.usersRepo.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	stats := profile.Stats

	// Level-up bonuses are queued and re-run through the same accounting,
	// recomputing the level from the post-bonus total each pass. The queue
	// drains because a bonus is worth less than a level step.
	queue := []pointsGrant{{points: points, description: description, source: source}}
	for len(queue) > 0 {
		grant := queue[0]
		queue = queue[1:]

		_, err = rs.rewardsRepo.Append(ctx, &entity.Reward{
			UserID:      uid,
			Type:        entity.RewardPoints,
			Points:      grant.points,
			EarnedAt:    rs.now(),
			Description: grant.description,
			Source:      grant.source,
		})
		if err != nil {
			return nil, errors.New("rewards repository error: " + err.Error())
		}
		observability.PointsAwarded.Add(float64(grant.points))

		stats.TotalPointsEarned += grant.points
		newLevel := LevelForPoints(stats.TotalPointsEarned)
		if newLevel > stats.CurrentLevel {
			stats.CurrentLevel = newLevel
			observability.LevelUps.Inc()
			queue = append(queue, pointsGrant{
				points:      levelUpBonus,
				description: fmt.Sprintf("Reached Level %d!", newLevel),
				source:      "level_up",
			})
		}
	}

	err = rs.usersRepo.UpdateStats(ctx, uid, stats)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return &stats, nil
}

func (rs *RewardsService) AwardBadge(ctx context.Context, uid uuid.UUID, badgeID, description string) error {
	if _, ok := entity.BadgeByID(badgeID); !ok {
		return errorvalues.ErrBadgeUnknown
	}
	profile, err := rs.usersRepo.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return err
		}
		return errors.New("users repository error: " + err.Error())
	}
	// Already held, nothing to do. The set is monotonic
	if slices.Contains(profile.Badges, badgeID) {
		return nil
	}

	_, err = rs.rewardsRepo.Append(ctx, &entity.Reward{
		UserID:      uid,
		Type:        entity.RewardBadge,
		BadgeID:     badgeID,
		EarnedAt:    rs.now(),
		Description: description,
		Source:      "achievement",
	})
	if err != nil {
		return errors.New("rewards repository error: " + err.Error())
	}
	err = rs.usersRepo.AddBadge(ctx, uid, badgeID)
	if err != nil {
		return errors.New("users repository error: " + err.Error())
	}
	observability.BadgesGranted.Inc()

	_, err = rs.AwardPoints(ctx, uid, badgeBonus, "Earned badge: "+description, "badge_earned")
	if err != nil {
		return err
	}
	return nil
}

func (rs *RewardsService) GetUserRewards(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Reward, error) {
	rewards, err := rs.rewardsRepo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("rewards repository error: " + err.Error())
	}
	return rewards, nil
}

func (rs *RewardsService) GetBadges(ctx context.Context, uid uuid.UUID) ([]BadgeStatus, error) {
	profile, err := rs.usersRepo.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	statuses := make([]BadgeStatus, 0, len(entity.BadgeCatalogue))
	for _, b := range entity.BadgeCatalogue {
		statuses = append(statuses, BadgeStatus{
			Badge:  b,
			Earned: slices.Contains(profile.Badges, b.ID),
		})
	}
	return statuses, nil
}
