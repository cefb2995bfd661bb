package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
	errorvalues "github.com/spendguard/spendguard/internal/error_values"
	"github.com/spendguard/spendguard/internal/repository"
	"github.com/spendguard/spendguard/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func testWishlistItem(userID uuid.UUID, now time.Time) *entity.WishlistItem {
	return &entity.WishlistItem{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           "Mechanical keyboard",
		Price:          decimal.RequireFromString("180.00"),
		Category:       "electronics",
		MoodTag:        "bored",
		AddedAt:        now.Add(-49 * time.Hour),
		CooldownEndsAt: now.Add(-time.Hour),
		Status:         entity.StatusReadyToReview,
	}
}

func TestCreateWishlistItem(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWishlistRepoWithConn(conn)
	now := time.Now()
	item := testWishlistItem(uuid.New(), now)
	item.Status = entity.StatusCoolingDown
	id := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO wishlist_items`)
	t.Run("created", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(item.UserID, item.Name, item.Price, item.Category, item.MoodTag,
				item.ContextTag, item.Notes, item.AddedAt, item.CooldownEndsAt, item.Status).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		result, err := repo.Create(ctx, item)
		assert.NoError(t, err)
		assert.Equal(t, id, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(item.UserID, item.Name, item.Price, item.Category, item.MoodTag,
				item.ContextTag, item.Notes, item.AddedAt, item.CooldownEndsAt, item.Status).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, item)
		assert.Error(t, err)
	})
}

func TestGetWishlistItemByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWishlistRepoWithConn(conn)
	now := time.Now()
	item := testWishlistItem(uuid.New(), now)
	query := regexp.QuoteMeta(`FROM wishlist_items WHERE id = $1;`)
	columns := []string{"user_id", "name", "price", "category", "mood_tag", "context_tag", "notes",
		"added_at", "cooldown_ends_at", "status", "purchased_at", "dismissed_at", "dismiss_reason"}
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(item.ID).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(
				item.UserID, item.Name, item.Price, item.Category, item.MoodTag, item.ContextTag,
				item.Notes, item.AddedAt, item.CooldownEndsAt, item.Status, nil, nil, "",
			))
		result, err := repo.GetByID(ctx, item.ID)
		assert.NoError(t, err)
		assert.Equal(t, *item, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(item.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, item.ID)
		assert.ErrorIs(t, err, errorvalues.ErrItemNotFound)
	})
}

func TestMarkReady(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWishlistRepoWithConn(conn)
	now := time.Now()
	query := regexp.QuoteMeta(`UPDATE wishlist_items SET status = $1`)
	t.Run("expired items transitioned", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(entity.StatusReadyToReview, entity.StatusCoolingDown, now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 3))
		count, err := repo.MarkReady(ctx, now)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
	t.Run("nothing expired", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(entity.StatusReadyToReview, entity.StatusCoolingDown, now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		count, err := repo.MarkReady(ctx, now)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(entity.StatusReadyToReview, entity.StatusCoolingDown, now).
			WillReturnError(errors.New("db error"))
		_, err := repo.MarkReady(ctx, now)
		assert.Error(t, err)
	})
}

func TestFinalizePurchase(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWishlistRepoWithConn(conn)
	now := time.Now()
	userID := uuid.New()
	item := testWishlistItem(userID, now)
	item.Status = entity.StatusPurchased
	item.PurchasedAt = &now
	purchase := &entity.Purchase{
		UserID:     userID,
		Name:       item.Name,
		Amount:     item.Price,
		Category:   item.Category,
		Date:       now,
		WasImpulse: true,
		MoodTag:    item.MoodTag,
	}
	stats := entity.UserStats{
		CurrentStreak:     0,
		LongestStreak:     4,
		TotalPointsEarned: 100,
		CurrentLevel:      1,
		TotalSaved:        decimal.Zero,
		TotalSpent:        item.Price,
		ADHDTaxTotal:      decimal.Zero,
	}
	itemQuery := regexp.QuoteMeta(`UPDATE wishlist_items SET status = $1, purchased_at = $2`)
	purchaseQuery := regexp.QuoteMeta(`INSERT INTO purchases`)
	statsQuery := regexp.QuoteMeta(`UPDATE user_profiles SET current_streak = $1`)

	t.Run("committed", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectExec(itemQuery).
			WithArgs(entity.StatusPurchased, item.PurchasedAt, item.ID, entity.StatusReadyToReview).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectQuery(purchaseQuery).
			WithArgs(purchase.UserID, purchase.Name, purchase.Amount, purchase.Category,
				purchase.Date, purchase.WasImpulse, purchase.MoodTag, purchase.ContextTag, purchase.Notes).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uuid.New()))
		conn.ExpectExec(statsQuery).
			WithArgs(stats.CurrentStreak, stats.LongestStreak, stats.TotalPointsEarned, stats.CurrentLevel,
				stats.TotalSaved, stats.TotalSpent, stats.ADHDTaxTotal, userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()

		err := repo.FinalizePurchase(ctx, item, purchase, stats)
		assert.NoError(t, err)
	})

	t.Run("concurrent finalization rolls back", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectExec(itemQuery).
			WithArgs(entity.StatusPurchased, item.PurchasedAt, item.ID, entity.StatusReadyToReview).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		conn.ExpectRollback()

		err := repo.FinalizePurchase(ctx, item, purchase, stats)
		assert.ErrorIs(t, err, errorvalues.ErrItemNotReady)
	})

	t.Run("missing profile rolls back", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectExec(itemQuery).
			WithArgs(entity.StatusPurchased, item.PurchasedAt, item.ID, entity.StatusReadyToReview).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectQuery(purchaseQuery).
			WithArgs(purchase.UserID, purchase.Name, purchase.Amount, purchase.Category,
				purchase.Date, purchase.WasImpulse, purchase.MoodTag, purchase.ContextTag, purchase.Notes).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uuid.New()))
		conn.ExpectExec(statsQuery).
			WithArgs(stats.CurrentStreak, stats.LongestStreak, stats.TotalPointsEarned, stats.CurrentLevel,
				stats.TotalSaved, stats.TotalSpent, stats.ADHDTaxTotal, userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		conn.ExpectRollback()

		err := repo.FinalizePurchase(ctx, item, purchase, stats)
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
	})
}

func TestFinalizeDismissal(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWishlistRepoWithConn(conn)
	now := time.Now()
	userID := uuid.New()
	item := testWishlistItem(userID, now)
	item.Status = entity.StatusDismissed
	item.DismissedAt = &now
	item.DismissReason = "too expensive"
	stats := entity.UserStats{
		CurrentStreak:     3,
		LongestStreak:     3,
		TotalPointsEarned: 150,
		CurrentLevel:      1,
		TotalSaved:        item.Price,
		TotalSpent:        decimal.Zero,
		ADHDTaxTotal:      decimal.Zero,
	}
	itemQuery := regexp.QuoteMeta(`UPDATE wishlist_items SET status = $1, dismissed_at = $2, dismiss_reason = $3`)
	statsQuery := regexp.QuoteMeta(`UPDATE user_profiles SET current_streak = $1`)

	t.Run("committed", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectExec(itemQuery).
			WithArgs(entity.StatusDismissed, item.DismissedAt, item.DismissReason, item.ID, entity.StatusReadyToReview).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectExec(statsQuery).
			WithArgs(stats.CurrentStreak, stats.LongestStreak, stats.TotalPointsEarned, stats.CurrentLevel,
				stats.TotalSaved, stats.TotalSpent, stats.ADHDTaxTotal, userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()

		err := repo.FinalizeDismissal(ctx, item, stats)
		assert.NoError(t, err)
	})

	t.Run("concurrent finalization rolls back", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectExec(itemQuery).
			WithArgs(entity.StatusDismissed, item.DismissedAt, item.DismissReason, item.ID, entity.StatusReadyToReview).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		conn.ExpectRollback()

		err := repo.FinalizeDismissal(ctx, item, stats)
		assert.ErrorIs(t, err, errorvalues.ErrItemNotReady)
	})
}

func TestDeleteWishlistItem(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWishlistRepoWithConn(conn)
	id := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM wishlist_items WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrItemNotFound)
	})
}
