package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/spendguard/spendguard/internal/error_values"
	"github.com/spendguard/spendguard/pkg/cleanup"
	"github.com/spendguard/spendguard/pkg/entity"
)

type WishlistRepository struct {
	conn PgConnection
}

func NewWishlistRepo(cfg DBConfig) *WishlistRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for wishlistRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for wishlistRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing wishlistRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WishlistRepository{
		conn: pool,
	}
}

func NewWishlistRepoWithConn(conn PgConnection) *WishlistRepository {
	return &WishlistRepository{
		conn: conn,
	}
}

func (wr *WishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) (uuid.UUID, error) {
	var id uuid.UUID
	row := wr.conn.QueryRow(ctx, `INSERT INTO wishlist_items
		(user_id, name, price, category, mood_tag, context_tag, notes, added_at, cooldown_ends_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id;`,
		item.UserID,
		item.Name,
		item.Price,
		item.Category,
		item.MoodTag,
		item.ContextTag,
		item.Notes,
		item.AddedAt,
		item.CooldownEndsAt,
		item.Status,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating wishlist item db error: " + err.Error())
	}
	return id, nil
}

func (wr *WishlistRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WishlistItem, error) {
	var item entity.WishlistItem
	item.ID = id
	row := wr.conn.QueryRow(ctx, `SELECT user_id, name, price, category, mood_tag, context_tag, notes,
		added_at, cooldown_ends_at, status, purchased_at, dismissed_at, dismiss_reason
		FROM wishlist_items WHERE id = $1;`, id)
	err := row.Scan(
		&item.UserID,
		&item.Name,
		&item.Price,
		&item.Category,
		&item.MoodTag,
		&item.ContextTag,
		&item.Notes,
		&item.AddedAt,
		&item.CooldownEndsAt,
		&item.Status,
		&item.PurchasedAt,
		&item.DismissedAt,
		&item.DismissReason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrItemNotFound
		}
		return nil, errors.New("getting wishlist item by id error: " + err.Error())
	}
	return &item, nil
}

func (wr *WishlistRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.WishlistItem, error) {
	items := make([]*entity.WishlistItem, 0)
	rows, err := wr.conn.Query(ctx, `SELECT id, user_id, name, price, category, mood_tag, context_tag, notes,
		added_at, cooldown_ends_at, status, purchased_at, dismissed_at, dismiss_reason
		FROM wishlist_items WHERE user_id = $1 ORDER BY added_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting wishlist items by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		item := entity.WishlistItem{}
		err = rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Name,
			&item.Price,
			&item.Category,
			&item.MoodTag,
			&item.ContextTag,
			&item.Notes,
			&item.AddedAt,
			&item.CooldownEndsAt,
			&item.Status,
			&item.PurchasedAt,
			&item.DismissedAt,
			&item.DismissReason,
		)
		if err != nil {
			return nil, errors.New("unmarshalling wishlist item error: " + err.Error())
		}
		items = append(items, &item)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return items, nil
}

func (wr *WishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := wr.conn.Exec(ctx, `DELETE FROM wishlist_items WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting wishlist item: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrItemNotFound
	}
	return nil
}

func (wr *WishlistRepository) MarkReady(ctx context.Context, now time.Time) (int64, error) {
	ct, err := wr.conn.Exec(ctx, `UPDATE wishlist_items SET status = $1
		WHERE status = $2 AND cooldown_ends_at <= $3;`,
		entity.StatusReadyToReview, entity.StatusCoolingDown, now,
	)
	if err != nil {
		return 0, errors.New("error marking expired cooldowns: " + err.Error())
	}
	return ct.RowsAffected(), nil
}

// FinalizePurchase writes the three records a purchase touches in one
// transaction. The item update is guarded on ready_to_review so a concurrent
// finalization cannot double-apply.
func (wr *WishlistRepository) FinalizePurchase(ctx context.Context, item *entity.WishlistItem, purchase *entity.Purchase, stats entity.UserStats) error {
	tx, err := wr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting purchase transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `UPDATE wishlist_items SET status = $1, purchased_at = $2
		WHERE id = $3 AND status = $4;`,
		entity.StatusPurchased, item.PurchasedAt, item.ID, entity.StatusReadyToReview,
	)
	if err != nil {
		return errors.New("error updating wishlist item status: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrItemNotReady
	}

	row := tx.QueryRow(ctx, `INSERT INTO purchases
		(user_id, name, amount, category, date, was_impulse, mood_tag, context_tag, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
		purchase.UserID,
		purchase.Name,
		purchase.Amount,
		purchase.Category,
		purchase.Date,
		purchase.WasImpulse,
		purchase.MoodTag,
		purchase.ContextTag,
		purchase.Notes,
	)
	if err := row.Scan(&purchase.ID); err != nil {
		return errors.New("error inserting purchase record: " + err.Error())
	}

	ct, err = tx.Exec(ctx, `UPDATE user_profiles SET current_streak = $1, longest_streak = $2,
		total_points_earned = $3, current_level = $4, total_saved = $5, total_spent = $6, adhd_tax_total = $7
		WHERE user_id = $8;`,
		stats.CurrentStreak,
		stats.LongestStreak,
		stats.TotalPointsEarned,
		stats.CurrentLevel,
		stats.TotalSaved,
		stats.TotalSpent,
		stats.ADHDTaxTotal,
		item.UserID,
	)
	if err != nil {
		return errors.New("error updating user stats: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing purchase transaction error: " + err.Error())
	}
	return nil
}

// FinalizeDismissal updates the item and the stats in one transaction with
// the same ready_to_review guard as FinalizePurchase.
func (wr *WishlistRepository) FinalizeDismissal(ctx context.Context, item *entity.WishlistItem, stats entity.UserStats) error {
	tx, err := wr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting dismissal transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `UPDATE wishlist_items SET status = $1, dismissed_at = $2, dismiss_reason = $3
		WHERE id = $4 AND status = $5;`,
		entity.StatusDismissed, item.DismissedAt, item.DismissReason, item.ID, entity.StatusReadyToReview,
	)
	if err != nil {
		return errors.New("error updating wishlist item status: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrItemNotReady
	}

	ct, err = tx.Exec(ctx, `UPDATE user_profiles SET current_streak = $1, longest_streak = $2,
		total_points_earned = $3, current_level = $4, total_saved = $5, total_spent = $6, adhd_tax_total = $7
		WHERE user_id = $8;`,
		stats.CurrentStreak,
		stats.LongestStreak,
		stats.TotalPointsEarned,
		stats.CurrentLevel,
		stats.TotalSaved,
		stats.TotalSpent,
		stats.ADHDTaxTotal,
		item.UserID,
	)
	if err != nil {
		return errors.New("error updating user stats: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing dismissal transaction error: " + err.Error())
	}
	return nil
}
