package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
	"github.com/spendguard/spendguard/internal/repository"
	"github.com/spendguard/spendguard/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestCreatePurchase(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewPurchasesRepoWithConn(conn)
	purchase := &entity.Purchase{
		UserID:     uuid.New(),
		Name:       "Coffee beans",
		Amount:     decimal.RequireFromString("18.50"),
		Category:   "food",
		Date:       time.Now(),
		WasImpulse: false,
		MoodTag:    "calm",
	}
	id := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO purchases`)
	t.Run("created", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(purchase.UserID, purchase.Name, purchase.Amount, purchase.Category,
				purchase.Date, purchase.WasImpulse, purchase.MoodTag, purchase.ContextTag, purchase.Notes).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		result, err := repo.Create(ctx, purchase)
		assert.NoError(t, err)
		assert.Equal(t, id, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(purchase.UserID, purchase.Name, purchase.Amount, purchase.Category,
				purchase.Date, purchase.WasImpulse, purchase.MoodTag, purchase.ContextTag, purchase.Notes).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, purchase)
		assert.Error(t, err)
	})
}

func TestGetPurchasesByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewPurchasesRepoWithConn(conn)
	userID := uuid.New()
	now := time.Now()
	query := regexp.QuoteMeta(`FROM purchases WHERE user_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3;`)
	columns := []string{"id", "user_id", "name", "amount", "category", "date", "was_impulse", "mood_tag", "context_tag", "notes"}
	t.Run("listed", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID, 10, 0).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(uuid.New(), userID, "Coffee beans", decimal.RequireFromString("18.50"), "food", now, false, "calm", "", "").
				AddRow(uuid.New(), userID, "Headphones", decimal.RequireFromString("250.00"), "electronics", now.Add(-time.Hour), true, "stressed", "late_night", ""))
		purchases, err := repo.GetByUserID(ctx, userID, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, purchases, 2)
		assert.True(t, purchases[1].WasImpulse)
	})
	t.Run("empty", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID, 10, 0).
			WillReturnRows(pgxmock.NewRows(columns))
		purchases, err := repo.GetByUserID(ctx, userID, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, purchases, 0)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID, 10, 0).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, userID, 10, 0)
		assert.Error(t, err)
	})
}
