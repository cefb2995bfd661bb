package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/spendguard/spendguard/internal/error_values"
	"github.com/spendguard/spendguard/internal/repository"
	"github.com/spendguard/spendguard/pkg/entity"
)

type PurchasesService struct {
	purchasesRepo repository.PurchasesRepositoryI
	usersRepo     repository.UsersRepositoryI
	now           func() time.Time
}

func NewPurchasesService(purchasesRepo repository.PurchasesRepositoryI, usersRepo repository.UsersRepositoryI) *PurchasesService {
	if purchasesRepo == nil || usersRepo == nil {
		log.Fatal("on purchases service provided nil repos")
	}
	return &PurchasesService{
		purchasesRepo: purchasesRepo,
		usersRepo:     usersRepo,
		now:           time.Now,
	}
}

// SetNowFunc replaces the clock. Used by tests for deterministic timestamps.
func (ps *PurchasesService) SetNowFunc(now func() time.Time) {
	ps.now = now
}

func (ps *PurchasesService) Log(ctx context.Context, uid uuid.UUID, req *LogPurchaseRequest) (*entity.Purchase, error) {
	if err := validate.Struct(*req); err != nil {
		return nil, errors.New("validation error: " + err.Error())
	}
	if req.Amount.Sign() <= 0 {
		return nil, errors.New("validation error: amount must be positive")
	}
	profile, err := ps.usersRepo.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	// Above the impulse threshold the purchase must go through the wishlist
	// cooldown, direct logging is refused
	if req.Amount.GreaterThan(profile.Settings.ImpulseThreshold) {
		return nil, errorvalues.ErrCooldownRequired
	}

	purchase := entity.Purchase{
		UserID:     uid,
		Name:       req.Name,
		Amount:     req.Amount,
		Category:   req.Category,
		Date:       ps.now(),
		WasImpulse: req.WasImpulse,
		MoodTag:    req.MoodTag,
		ContextTag: req.ContextTag,
		Notes:      req.Notes,
	}
	id, err := ps.purchasesRepo.Create(ctx, &purchase)
	if err != nil {
		return nil, errors.New("purchases repository error: " + err.Error())
	}
	purchase.ID = id

	stats := profile.Stats
	stats.TotalSpent = stats.TotalSpent.Add(req.Amount)
	err = ps.usersRepo.UpdateStats(ctx, uid, stats)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	return &purchase, nil
}

func (ps *PurchasesService) GetUserPurchases(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Purchase, error) {
	purchases, err := ps.purchasesRepo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("purchases repository error: " + err.Error())
	}
	return purchases, nil
}
