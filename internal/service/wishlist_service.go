package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/spendguard/spendguard/internal/error_values"
	"github.com/spendguard/spendguard/internal/observability"
	"github.com/spendguard/spendguard/internal/repository"
	"github.com/spendguard/spendguard/pkg/entity"
)

// WishlistService owns the item lifecycle:
// cooling_down -> ready_to_review -> purchased | dismissed.
// Terminal states never transition again; purchase and dismiss are refused
// on anything that is not ready_to_review regardless of what the caller's UI
// showed.
type WishlistService struct {
	wishlistRepo repository.WishlistRepositoryI
	usersRepo    repository.UsersRepositoryI
	rewards      RewardsServiceI
	now          func() time.Time
}

func NewWishlistService(wishlistRepo repository.WishlistRepositoryI, usersRepo repository.UsersRepositoryI, rewards RewardsServiceI) *WishlistService {
	if wishlistRepo == nil || usersRepo == nil || rewards == nil {
		log.Fatal("on wishlist service provided nil dependencies")
	}
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		usersRepo:    usersRepo,
		rewards:      rewards,
		now:          time.Now,
	}
}

// SetNowFunc replaces the clock. Used by tests for deterministic timestamps.
func (ws *WishlistService) SetNowFunc(now func() time.Time) {
	ws.now = now
}

func (ws *WishlistService) Add(ctx context.Context, uid uuid.UUID, req *AddWishlistRequest) (*entity.WishlistItem, error) {
	if err := validate.Struct(*req); err != nil {
		return nil, errors.New("validation error: " + err.Error())
	}
	if req.Price.Sign() <= 0 {
		return nil, errors.New("validation error: price must be positive")
	}
	profile, err := ws.usersRepo.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}

	// Cooldown end is fixed at creation from the setting in force right
	// now. Later settings changes never touch existing items
	addedAt := ws.now()
	item := entity.WishlistItem{
		UserID:         uid,
		Name:           req.Name,
		Price:          req.Price,
		Category:       req.Category,
		MoodTag:        req.MoodTag,
		ContextTag:     req.ContextTag,
		Notes:          req.Notes,
		AddedAt:        addedAt,
		CooldownEndsAt: addedAt.Add(time.Duration(profile.Settings.CooldownHours) * time.Hour),
		Status:         entity.StatusCoolingDown,
	}
	id, err := ws.wishlistRepo.Create(ctx, &item)
	if err != nil {
		return nil, errors.New("wishlist repository error: " + err.Error())
	}
	item.ID = id
	observability.WishlistTransitions.WithLabelValues(string(entity.StatusCoolingDown)).Inc()

	_, err = ws.rewards.AwardPoints(ctx, uid, wishlistAddPoints, "Added item to wishlist", "wishlist_add")
	if err != nil {
		slog.Error("awarding wishlist add points failed", slog.String("error", err.Error()))
	}
	return &item, nil
}

func (ws *WishlistService) GetUserItems(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.WishlistItem, error) {
	items, err := ws.wishlistRepo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("wishlist repository error: " + err.Error())
	}
	return items, nil
}

func (ws *WishlistService) Purchase(ctx context.Context, itemID, uid uuid.UUID) (*entity.WishlistItem, error) {
	item, profile, err := ws.readyItem(ctx, itemID, uid)
	if err != nil {
		return nil, err
	}

	purchasedAt := ws.now()
	item.Status = entity.StatusPurchased
	item.PurchasedAt = &purchasedAt

	purchase := entity.Purchase{
		UserID:     uid,
		Name:       item.Name,
		Amount:     item.Price,
		Category:   item.Category,
		Date:       purchasedAt,
		WasImpulse: true,
		MoodTag:    item.MoodTag,
		ContextTag: item.ContextTag,
		Notes:      item.Notes,
	}

	// A completed purchase breaks the streak no matter how long the wait was
	stats := profile.Stats
	stats.TotalSpent = stats.TotalSpent.Add(item.Price)
	stats.CurrentStreak = 0

	err = ws.wishlistRepo.FinalizePurchase(ctx, item, &purchase, stats)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrItemNotReady), errors.Is(err, errorvalues.ErrProfileNotFound):
			return nil, err
		}
		return nil, errors.New("wishlist repository error: " + err.Error())
	}
	observability.WishlistTransitions.WithLabelValues(string(entity.StatusPurchased)).Inc()

	_, err = ws.rewards.AwardPoints(ctx, uid, cooldownCompletePoints, "Completed cooldown before purchase", "cooldown_complete")
	if err != nil {
		slog.Error("awarding cooldown points failed", slog.String("error", err.Error()))
	}
	return item, nil
}

func (ws *WishlistService) Dismiss(ctx context.Context, itemID, uid uuid.UUID, reason string) (*entity.WishlistItem, error) {
	item, profile, err := ws.readyItem(ctx, itemID, uid)
	if err != nil {
		return nil, err
	}

	dismissedAt := ws.now()
	item.Status = entity.StatusDismissed
	item.DismissedAt = &dismissedAt
	item.DismissReason = reason

	prevStats := profile.Stats
	stats := prevStats
	stats.TotalSaved = stats.TotalSaved.Add(item.Price)
	stats.CurrentStreak++
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}

	err = ws.wishlistRepo.FinalizeDismissal(ctx, item, stats)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrItemNotReady), errors.Is(err, errorvalues.ErrProfileNotFound):
			return nil, err
		}
		return nil, errors.New("wishlist repository error: " + err.Error())
	}
	observability.WishlistTransitions.WithLabelValues(string(entity.StatusDismissed)).Inc()

	_, err = ws.rewards.AwardPoints(ctx, uid, dismissPoints,
		fmt.Sprintf("Dismissed %q and saved $%s", item.Name, item.Price.StringFixed(2)), "wishlist_dismiss")
	if err != nil {
		slog.Error("awarding dismissal points failed", slog.String("error", err.Error()))
	}

	for _, badgeID := range BadgesForDismissal(prevStats, stats) {
		err = ws.rewards.AwardBadge(ctx, uid, badgeID, badgeGrantDescription(badgeID))
		if err != nil {
			slog.Error("awarding badge failed",
				slog.String("badge", badgeID), slog.String("error", err.Error()))
		}
	}
	return item, nil
}

func (ws *WishlistService) Delete(ctx context.Context, itemID, uid uuid.UUID) error {
	item, err := ws.wishlistRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return err
		}
		return errors.New("wishlist repository error: " + err.Error())
	}
	if item.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	err = ws.wishlistRepo.Delete(ctx, itemID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return err
		}
		return errors.New("wishlist repository error: " + err.Error())
	}
	return nil
}

func (ws *WishlistService) SweepCooldowns(ctx context.Context, now time.Time) (int64, error) {
	count, err := ws.wishlistRepo.MarkReady(ctx, now)
	if err != nil {
		return 0, errors.New("wishlist repository error: " + err.Error())
	}
	observability.SweepRuns.Inc()
	if count > 0 {
		observability.SweepTransitioned.Add(float64(count))
		observability.WishlistTransitions.WithLabelValues(string(entity.StatusReadyToReview)).Add(float64(count))
		slog.Info("cooldown sweep moved items to review", slog.Int64("count", count))
	}
	return count, nil
}

// readyItem loads an item and the owner's profile, refusing anything that is
// not the caller's or not in ready_to_review.
func (ws *WishlistService) readyItem(ctx context.Context, itemID, uid uuid.UUID) (*entity.WishlistItem, *entity.Profile, error) {
	item, err := ws.wishlistRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return nil, nil, err
		}
		return nil, nil, errors.New("wishlist repository error: " + err.Error())
	}
	if item.UserID != uid {
		return nil, nil, errorvalues.ErrWrongOwner
	}
	if item.Status != entity.StatusReadyToReview {
		return nil, nil, errorvalues.ErrItemNotReady
	}
	profile, err := ws.usersRepo.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, nil, err
		}
		return nil, nil, errors.New("users repository error: " + err.Error())
	}
	return item, profile, nil
}
