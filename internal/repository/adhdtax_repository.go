package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/spendguard/spendguard/internal/error_values"
	"github.com/spendguard/spendguard/pkg/cleanup"
	"github.com/spendguard/spendguard/pkg/entity"
)

type ADHDTaxRepository struct {
	conn PgConnection
}

func NewADHDTaxRepo(cfg DBConfig) *ADHDTaxRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for adhdTaxRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for adhdTaxRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing adhdTaxRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ADHDTaxRepository{
		conn: pool,
	}
}

func NewADHDTaxRepoWithConn(conn PgConnection) *ADHDTaxRepository {
	return &ADHDTaxRepository{
		conn: conn,
	}
}

func (tr *ADHDTaxRepository) Create(ctx context.Context, item *entity.ADHDTaxItem) (uuid.UUID, error) {
	var id uuid.UUID
	row := tr.conn.QueryRow(ctx, `INSERT INTO adhd_tax_items
		(user_id, type, amount, description, date, category, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		item.UserID,
		item.Type,
		item.Amount,
		item.Description,
		item.Date,
		item.Category,
		item.Notes,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating adhd tax item db error: " + err.Error())
	}
	return id, nil
}

func (tr *ADHDTaxRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ADHDTaxItem, error) {
	var item entity.ADHDTaxItem
	item.ID = id
	row := tr.conn.QueryRow(ctx, `SELECT user_id, type, amount, description, date, category, notes
		FROM adhd_tax_items WHERE id = $1;`, id)
	err := row.Scan(
		&item.UserID,
		&item.Type,
		&item.Amount,
		&item.Description,
		&item.Date,
		&item.Category,
		&item.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaxItemNotFound
		}
		return nil, errors.New("getting adhd tax item by id error: " + err.Error())
	}
	return &item, nil
}

func (tr *ADHDTaxRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.ADHDTaxItem, error) {
	items := make([]*entity.ADHDTaxItem, 0)
	rows, err := tr.conn.Query(ctx, `SELECT id, user_id, type, amount, description, date, category, notes
		FROM adhd_tax_items WHERE user_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting adhd tax items by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		item := entity.ADHDTaxItem{}
		err = rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Type,
			&item.Amount,
			&item.Description,
			&item.Date,
			&item.Category,
			&item.Notes,
		)
		if err != nil {
			return nil, errors.New("unmarshalling adhd tax item error: " + err.Error())
		}
		items = append(items, &item)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return items, nil
}

func (tr *ADHDTaxRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM adhd_tax_items WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting adhd tax item: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaxItemNotFound
	}
	return nil
}
