package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

type WishlistStatus string

const (
	StatusCoolingDown   WishlistStatus = "cooling_down"
	StatusReadyToReview WishlistStatus = "ready_to_review"
	StatusPurchased     WishlistStatus = "purchased"
	StatusDismissed     WishlistStatus = "dismissed"
)

type WishlistItem struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"uid"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Category       string          `json:"category"`
	MoodTag        string          `json:"mood_tag,omitempty"`
	ContextTag     string          `json:"context_tag,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	AddedAt        time.Time       `json:"added_at"`
	CooldownEndsAt time.Time       `json:"cooldown_ends_at"`
	Status         WishlistStatus  `json:"status"`
	PurchasedAt    *time.Time      `json:"purchased_at,omitempty"`
	DismissedAt    *time.Time      `json:"dismissed_at,omitempty"`
	DismissReason  string          `json:"dismiss_reason,omitempty"`
}

// Terminal reports whether the item's lifecycle is finished.
// Terminal items never re-enter cooldown or review.
func (wi *WishlistItem) Terminal() bool {
	return wi.Status == StatusPurchased || wi.Status == StatusDismissed
}

type Purchase struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"uid"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Category   string          `json:"category"`
	Date       time.Time       `json:"date"`
	WasImpulse bool            `json:"was_impulse"`
	MoodTag    string          `json:"mood_tag,omitempty"`
	ContextTag string          `json:"context_tag,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

type ADHDTaxItem struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"uid"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

type RewardType string

const (
	RewardPoints  RewardType = "points"
	RewardBadge   RewardType = "badge"
	RewardLevelUp RewardType = "level_up"
)

// Reward is an append-only ledger entry. Rows are never updated or deleted.
type Reward struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"uid"`
	Type        RewardType `json:"type"`
	Points      int        `json:"points,omitempty"`
	BadgeID     string     `json:"badge_id,omitempty"`
	EarnedAt    time.Time  `json:"earned_at"`
	Description string     `json:"description"`
	Source      string     `json:"source"`
}

type UserStats struct {
	CurrentStreak     int             `json:"current_streak"`
	LongestStreak     int             `json:"longest_streak"`
	TotalPointsEarned int             `json:"total_points_earned"`
	CurrentLevel      int             `json:"current_level"`
	TotalSaved        decimal.Decimal `json:"total_saved"`
	TotalSpent        decimal.Decimal `json:"total_spent"`
	ADHDTaxTotal      decimal.Decimal `json:"adhd_tax_total"`
}

type UserSettings struct {
	ImpulseThreshold     decimal.Decimal `json:"impulse_threshold"`
	CooldownHours        int             `json:"cooldown_hours"`
	NotificationsEnabled bool            `json:"notifications_enabled"`
	MonthlyBudget        decimal.Decimal `json:"monthly_budget"`
	Currency             string          `json:"currency"`
	Theme                string          `json:"theme"`
	Language             string          `json:"language"`
}

// Profile is the per-user singleton holding derived stats, settings and the
// set of earned badge ids.
type Profile struct {
	Stats    UserStats    `json:"stats"`
	Settings UserSettings `json:"settings"`
	Badges   []string     `json:"badges"`
}

// DefaultStats returns zeroed stats for a fresh account. Level starts at 1.
func DefaultStats() UserStats {
	return UserStats{
		CurrentLevel: 1,
		TotalSaved:   decimal.Zero,
		TotalSpent:   decimal.Zero,
		ADHDTaxTotal: decimal.Zero,
	}
}

func DefaultSettings() UserSettings {
	return UserSettings{
		ImpulseThreshold:     decimal.NewFromInt(50),
		CooldownHours:        48,
		NotificationsEnabled: true,
		MonthlyBudget:        decimal.NewFromInt(1000),
		Currency:             "USD",
		Theme:                "light",
		Language:             "en",
	}
}

// Cooldown durations a user may choose between.
var AllowedCooldownHours = []int{24, 48, 72}

func ValidCooldownHours(h int) bool {
	for _, allowed := range AllowedCooldownHours {
		if h == allowed {
			return true
		}
	}
	return false
}
