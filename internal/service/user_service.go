package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/spendguard/spendguard/internal/error_values"
	"github.com/spendguard/spendguard/internal/repository"
	"github.com/spendguard/spendguard/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	err = us.repo.Create(ctx, &entity.User{
		Name:         req.Name,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, errorvalues.ErrUserExists
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user, err := us.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	// Fresh accounts start with zeroed stats, default settings, no badges
	err = us.repo.InitProfile(ctx, user.ID, &entity.Profile{
		Stats:    entity.DefaultStats(),
		Settings: entity.DefaultSettings(),
		Badges:   []string{},
	})
	if err != nil {
		return nil, errors.New("repository profile init error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := us.repo.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return profile, nil
}

func (us *UserService) UpdateSettings(ctx context.Context, id uuid.UUID, req *UpdateSettingsRequest) (*entity.UserSettings, error) {
	if err := validate.Struct(*req); err != nil {
		return nil, errors.New("validation error: " + err.Error())
	}
	if !entity.ValidCooldownHours(req.CooldownHours) {
		return nil, errors.New("validation error: cooldown hours must be one of 24, 48, 72")
	}
	if req.ImpulseThreshold.Sign() < 0 || req.MonthlyBudget.Sign() < 0 {
		return nil, errors.New("validation error: threshold and budget cannot be negative")
	}
	settings := entity.UserSettings{
		ImpulseThreshold:     req.ImpulseThreshold,
		CooldownHours:        req.CooldownHours,
		NotificationsEnabled: req.NotificationsEnabled,
		MonthlyBudget:        req.MonthlyBudget,
		Currency:             req.Currency,
		Theme:                req.Theme,
		Language:             req.Language,
	}
	err := us.repo.UpdateSettings(ctx, id, settings)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return &settings, nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
