package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendguard/spendguard/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type AddWishlistRequest struct {
	Name       string          `validate:"required,max=200"`
	Price      decimal.Decimal `validate:"-"`
	Category   string          `validate:"required,oneof=electronics clothing food entertainment home transportation health subscription other"`
	MoodTag    string          `validate:"omitempty,oneof=happy stressed bored sad frustrated excited anxious neutral"`
	ContextTag string          `validate:"max=100"`
	Notes      string          `validate:"max=2000"`
}

type LogPurchaseRequest struct {
	Name       string          `validate:"required,max=200"`
	Amount     decimal.Decimal `validate:"-"`
	Category   string          `validate:"required,oneof=electronics clothing food entertainment home transportation health subscription other"`
	WasImpulse bool            `validate:"-"`
	MoodTag    string          `validate:"omitempty,oneof=happy stressed bored sad frustrated excited anxious neutral"`
	ContextTag string          `validate:"max=100"`
	Notes      string          `validate:"max=2000"`
}

type AddTaxItemRequest struct {
	Type        string          `validate:"required,oneof=late_fee unused_subscription impulse_return overdraft duplicate expedited_shipping lost_item forgotten_appointment other"`
	Amount      decimal.Decimal `validate:"-"`
	Description string          `validate:"required,max=500"`
	Category    string          `validate:"omitempty,oneof=electronics clothing food entertainment home transportation health subscription other"`
	Notes       string          `validate:"max=2000"`
}

type UpdateSettingsRequest struct {
	ImpulseThreshold     decimal.Decimal `validate:"-"`
	CooldownHours        int             `validate:"-"`
	NotificationsEnabled bool            `validate:"-"`
	MonthlyBudget        decimal.Decimal `validate:"-"`
	Currency             string          `validate:"required,len=3,alpha"`
	Theme                string          `validate:"required,oneof=light dark auto"`
	Language             string          `validate:"required,min=2,max=8"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type InsightReply struct {
	Message string         `json:"message"`
	Usage   map[string]any `json:"usage,omitempty"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database together
	// with the default profile. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Reads the stats + settings + badges snapshot
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	// Explicit settings save. Cooldown hours must be one of the allowed values
	UpdateSettings(ctx context.Context, id uuid.UUID, req *UpdateSettingsRequest) (*entity.UserSettings, error)
}

type WishlistServiceI interface {
	// Creates a cooling_down item snapshotting the user's current cooldown
	// setting, grants the add reward
	Add(ctx context.Context, uid uuid.UUID, req *AddWishlistRequest) (*entity.WishlistItem, error)
	GetUserItems(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.WishlistItem, error)
	// Finalizes a ready_to_review item as bought: purchase record, spent
	// total, streak reset, cooldown reward
	Purchase(ctx context.Context, itemID, uid uuid.UUID) (*entity.WishlistItem, error)
	// Finalizes a ready_to_review item as resisted: saved total, streak
	// bump, dismissal reward, badge thresholds
	Dismiss(ctx context.Context, itemID, uid uuid.UUID, reason string) (*entity.WishlistItem, error)
	// Removes the record regardless of status, no stat side effects
	Delete(ctx context.Context, itemID, uid uuid.UUID) error
	// Moves expired cooling_down items to ready_to_review
	SweepCooldowns(ctx context.Context, now time.Time) (int64, error)
}

type PurchasesServiceI interface {
	// Logs a purchase directly. Amounts above the impulse threshold are
	// rejected, those must go through the wishlist cooldown
	Log(ctx context.Context, uid uuid.UUID, req *LogPurchaseRequest) (*entity.Purchase, error)
	GetUserPurchases(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Purchase, error)
}

type ADHDTaxServiceI interface {
	Add(ctx context.Context, uid uuid.UUID, req *AddTaxItemRequest) (*entity.ADHDTaxItem, error)
	GetUserItems(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.ADHDTaxItem, error)
	// Removes the record and reverses its contribution to the running total
	Delete(ctx context.Context, itemID, uid uuid.UUID) error
}

type RewardsServiceI interface {
	// Appends a points ledger entry and recomputes level, cascading
	// level-up bonuses until the level settles
	AwardPoints(ctx context.Context, uid uuid.UUID, points int, description, source string) (*entity.UserStats, error)
	// Grants a badge once. Held badges are a no-op
	AwardBadge(ctx context.Context, uid uuid.UUID, badgeID, description string) error
	GetUserRewards(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Reward, error)
	// Catalogue merged with the user's held set
	GetBadges(ctx context.Context, uid uuid.UUID) ([]BadgeStatus, error)
}

type BadgeStatus struct {
	entity.Badge
	Earned bool `json:"earned"`
}

type InsightServiceI interface {
	// Serializes the user's snapshot into the system prompt and forwards
	// the conversation to the completions endpoint
	Chat(ctx context.Context, uid uuid.UUID, messages []ChatMessage) (*InsightReply, error)
}
