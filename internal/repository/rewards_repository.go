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

// RewardsRepository backs the append-only reward ledger. There are no update
// or delete statements here on purpose.
type RewardsRepository struct {
	conn PgConnection
}

func NewRewardsRepo(cfg DBConfig) *RewardsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for rewardsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for rewardsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing rewardsRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &RewardsRepository{
		conn: pool,
	}
}

func NewRewardsRepoWithConn(conn PgConnection) *RewardsRepository {
	return &RewardsRepository{
		conn: conn,
	}
}

func (rr *RewardsRepository) Append(ctx context.Context, reward *entity.Reward) (uuid.UUID, error) {
	var id uuid.UUID
	row := rr.conn.QueryRow(ctx, `INSERT INTO rewards
		(user_id, type, points, badge_id, earned_at, description, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		reward.UserID,
		reward.Type,
		reward.Points,
		reward.BadgeID,
		reward.EarnedAt,
		reward.Description,
		reward.Source,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("appending reward db error: " + err.Error())
	}
	return id, nil
}

func (rr *RewardsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Reward, error) {
	rewards := make([]*entity.Reward, 0)
	rows, err := rr.conn.Query(ctx, `SELECT id, user_id, type, points, badge_id, earned_at, description, source
		FROM rewards WHERE user_id = $1 ORDER BY earned_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting rewards by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		r := entity.Reward{}
		err = rows.Scan(
			&r.ID,
			&r.UserID,
			&r.Type,
			&r.Points,
			&r.BadgeID,
			&r.EarnedAt,
			&r.Description,
			&r.Source,
		)
		if err != nil {
			return nil, errors.New("unmarshalling reward error: " + err.Error())
		}
		rewards = append(rewards, &r)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return rewards, nil
}
