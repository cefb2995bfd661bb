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

type ADHDTaxService struct {
	taxRepo   repository.ADHDTaxRepositoryI
	usersRepo repository.UsersRepositoryI
	now       func() time.Time
}

func NewADHDTaxService(taxRepo repository.ADHDTaxRepositoryI, usersRepo repository.UsersRepositoryI) *ADHDTaxService {
	if taxRepo == nil || usersRepo == nil {
		log.Fatal("on adhd tax service provided nil repos")
	}
	return &ADHDTaxService{
		taxRepo:   taxRepo,
		usersRepo: usersRepo,
		now:       time.Now,
	}
}

// SetNowFunc replaces the clock. Used by tests for deterministic timestamps.
func (ts *ADHDTaxService) SetNowFunc(now func() time.Time) {
	ts.now = now
}

func (ts *ADHDTaxService) Add(ctx context.Context, uid uuid.UUID, req *AddTaxItemRequest) (*entity.ADHDTaxItem, error) {
	if err := validate.Struct(*req); err != nil {
		return nil, errors.New("validation error: " + err.Error())
	}
	if req.Amount.Sign() <= 0 {
		return nil, errors.New("validation error: amount must be positive")
	}
	profile, err := ts.usersRepo.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}

	item := entity.ADHDTaxItem{
		UserID:      uid,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        ts.now(),
		Category:    req.Category,
		Notes:       req.Notes,
	}
	id, err := ts.taxRepo.Create(ctx, &item)
	if err != nil {
		return nil, errors.New("adhd tax repository error: " + err.Error())
	}
	item.ID = id

	stats := profile.Stats
	stats.ADHDTaxTotal = stats.ADHDTaxTotal.Add(req.Amount)
	err = ts.usersRepo.UpdateStats(ctx, uid, stats)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	return &item, nil
}

func (ts *ADHDTaxService) GetUserItems(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.ADHDTaxItem, error) {
	items, err := ts.taxRepo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("adhd tax repository error: " + err.Error())
	}
	return items, nil
}

func (ts *ADHDTaxService) Delete(ctx context.Context, itemID, uid uuid.UUID) error {
	item, err := ts.taxRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaxItemNotFound) {
			return err
		}
		return errors.New("adhd tax repository error: " + err.Error())
	}
	if item.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	profile, err := ts.usersRepo.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return err
		}
		return errors.New("users repository error: " + err.Error())
	}

	err = ts.taxRepo.Delete(ctx, itemID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaxItemNotFound) {
			return err
		}
		return errors.New("adhd tax repository error: " + err.Error())
	}

	// Deletion reverses the contribution as-is, no clamping or
	// reconciliation against the live total
	stats := profile.Stats
	stats.ADHDTaxTotal = stats.ADHDTaxTotal.Sub(item.Amount)
	err = ts.usersRepo.UpdateStats(ctx, uid, stats)
	if err != nil {
		return errors.New("users repository error: " + err.Error())
	}
	return nil
}
