package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spendguard/spendguard/pkg/cleanup"
	"github.com/spendguard/spendguard/pkg/entity"
)

type PurchasesRepository struct {
	conn PgConnection
}

func NewPurchasesRepo(cfg DBConfig) *PurchasesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for purchasesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for purchasesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing purchasesRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PurchasesRepository{
		conn: pool,
	}
}

func NewPurchasesRepoWithConn(conn PgConnection) *PurchasesRepository {
	return &PurchasesRepository{
		conn: conn,
	}
}

func (pr *PurchasesRepository) Create(ctx context.Context, purchase *entity.Purchase) (uuid.UUID, error) {
	var id uuid.UUID
	row := pr.conn.QueryRow(ctx, `INSERT INTO purchases
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
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating purchase db error: " + err.Error())
	}
	return id, nil
}

func (pr *PurchasesRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Purchase, error) {
	purchases := make([]*entity.Purchase, 0)
	rows, err := pr.conn.Query(ctx, `SELECT id, user_id, name, amount, category, date, was_impulse, mood_tag, context_tag, notes
		FROM purchases WHERE user_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting purchases by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		p := entity.Purchase{}
		err = rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Name,
			&p.Amount,
			&p.Category,
			&p.Date,
			&p.WasImpulse,
			&p.MoodTag,
			&p.ContextTag,
			&p.Notes,
		)
		if err != nil {
			return nil, errors.New("unmarshalling purchase error: " + err.Error())
		}
		purchases = append(purchases, &p)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return purchases, nil
}
