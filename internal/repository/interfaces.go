package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spendguard/spendguard/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user together with the profile row
	Delete(ctx context.Context, uid uuid.UUID) error
	// Creates the per-user profile singleton (stats + settings + badges)
	InitProfile(ctx context.Context, uid uuid.UUID, profile *entity.Profile) error
	// Reads the profile singleton
	GetProfile(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	// Overwrites the stats part of the profile
	UpdateStats(ctx context.Context, uid uuid.UUID, stats entity.UserStats) error
	// Overwrites the settings part of the profile
	UpdateSettings(ctx context.Context, uid uuid.UUID, settings entity.UserSettings) error
	// Appends badgeID to the held set. The set is monotonic, repeated adds are no-ops
	AddBadge(ctx context.Context, uid uuid.UUID, badgeID string) error
}

type WishlistRepositoryI interface {
	// Creates new wishlist item, returns generated id
	Create(ctx context.Context, item *entity.WishlistItem) (uuid.UUID, error)
	// Searches item with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WishlistItem, error)
	// Lists items owned by uid ordered by added_at descending
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.WishlistItem, error)
	// Removes item regardless of lifecycle status
	Delete(ctx context.Context, id uuid.UUID) error
	// Moves every cooling_down item whose cooldown expired to ready_to_review.
	// Returns the number of transitioned rows
	MarkReady(ctx context.Context, now time.Time) (int64, error)
	// Finalizes a purchase in one transaction: item update (guarded on
	// ready_to_review), purchase insert, stats overwrite
	FinalizePurchase(ctx context.Context, item *entity.WishlistItem, purchase *entity.Purchase, stats entity.UserStats) error
	// Finalizes a dismissal in one transaction: item update (guarded on
	// ready_to_review) and stats overwrite
	FinalizeDismissal(ctx context.Context, item *entity.WishlistItem, stats entity.UserStats) error
}

type PurchasesRepositoryI interface {
	// Creates a purchase record, returns generated id
	Create(ctx context.Context, purchase *entity.Purchase) (uuid.UUID, error)
	// Lists purchases owned by uid ordered by date descending
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Purchase, error)
}

type ADHDTaxRepositoryI interface {
	// Creates a tax record, returns generated id
	Create(ctx context.Context, item *entity.ADHDTaxItem) (uuid.UUID, error)
	// Searches record with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ADHDTaxItem, error)
	// Lists records owned by uid ordered by date descending
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.ADHDTaxItem, error)
	// Deletes record with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type RewardsRepositoryI interface {
	// Appends a ledger entry, returns generated id. Entries are never
	// updated or deleted
	Append(ctx context.Context, reward *entity.Reward) (uuid.UUID, error)
	// Lists entries owned by uid ordered by earned_at descending
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Reward, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
