package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/spendguard/spendguard/internal/error_values"
	"github.com/spendguard/spendguard/pkg/cleanup"
	"github.com/spendguard/spendguard/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing usersRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (name, password_hash) VALUES ($1, $2);`,
		user.Name,
		user.PasswordHash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// Unique violation
			if pgErr.Code == "23505" {
				return errorvalues.ErrUserExists
			}
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, password_hash FROM users WHERE name = $1;`, name)
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("getting user by name error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	user.ID = uid
	row := ur.conn.QueryRow(ctx, `SELECT name, password_hash FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&user.Name, &user.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("getting user by id error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("error deleting user: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) InitProfile(ctx context.Context, uid uuid.UUID, profile *entity.Profile) error {
	_, err := ur.conn.Exec(ctx, `INSERT INTO user_profiles 
		(user_id, current_streak, longest_streak, total_points_earned, current_level, total_saved, total_spent, adhd_tax_total,
		 impulse_threshold, cooldown_hours, notifications_enabled, monthly_budget, currency, theme, language, badges)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (user_id) DO NOTHING;`,
		uid,
		profile.Stats.CurrentStreak,
		profile.Stats.LongestStreak,
		profile.Stats.TotalPointsEarned,
		profile.Stats.CurrentLevel,
		profile.Stats.TotalSaved,
		profile.Stats.TotalSpent,
		profile.Stats.ADHDTaxTotal,
		profile.Settings.ImpulseThreshold,
		profile.Settings.CooldownHours,
		profile.Settings.NotificationsEnabled,
		profile.Settings.MonthlyBudget,
		profile.Settings.Currency,
		profile.Settings.Theme,
		profile.Settings.Language,
		profile.Badges,
	)
	if err != nil {
		return errors.New("creating user profile db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) GetProfile(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	var p entity.Profile
	row := ur.conn.QueryRow(ctx, `SELECT current_streak, longest_streak, total_points_earned, current_level, 
		total_saved, total_spent, adhd_tax_total, impulse_threshold, cooldown_hours, notifications_enabled, 
		monthly_budget, currency, theme, language, badges FROM user_profiles WHERE user_id = $1;`, uid)
	err := row.Scan(
		&p.Stats.CurrentStreak,
		&p.Stats.LongestStreak,
		&p.Stats.TotalPointsEarned,
		&p.Stats.CurrentLevel,
		&p.Stats.TotalSaved,
		&p.Stats.TotalSpent,
		&p.Stats.ADHDTaxTotal,
		&p.Settings.ImpulseThreshold,
		&p.Settings.CooldownHours,
		&p.Settings.NotificationsEnabled,
		&p.Settings.MonthlyBudget,
		&p.Settings.Currency,
		&p.Settings.Theme,
		&p.Settings.Language,
		&p.Badges,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("getting user profile error: " + err.Error())
	}
	return &p, nil
}

func (ur *UsersRepository) UpdateStats(ctx context.Context, uid uuid.UUID, stats entity.UserStats) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE user_profiles SET current_streak = $1, longest_streak = $2, 
		total_points_earned = $3, current_level = $4, total_saved = $5, total_spent = $6, adhd_tax_total = $7 
		WHERE user_id = $8;`,
		stats.CurrentStreak,
		stats.LongestStreak,
		stats.TotalPointsEarned,
		stats.CurrentLevel,
		stats.TotalSaved,
		stats.TotalSpent,
		stats.ADHDTaxTotal,
		uid,
	)
	if err != nil {
		return errors.New("error updating user stats: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateSettings(ctx context.Context, uid uuid.UUID, settings entity.UserSettings) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE user_profiles SET impulse_threshold = $1, cooldown_hours = $2, 
		notifications_enabled = $3, monthly_budget = $4, currency = $5, theme = $6, language = $7 
		WHERE user_id = $8;`,
		settings.ImpulseThreshold,
		settings.CooldownHours,
		settings.NotificationsEnabled,
		settings.MonthlyBudget,
		settings.Currency,
		settings.Theme,
		settings.Language,
		uid,
	)
	if err != nil {
		return errors.New("error updating user settings: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}
	return nil
}

func (ur *UsersRepository) AddBadge(ctx context.Context, uid uuid.UUID, badgeID string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE user_profiles SET badges = array_append(badges, $1) 
		WHERE user_id = $2 AND NOT ($1 = ANY(badges));`,
		badgeID, uid,
	)
	if err != nil {
		return errors.New("error adding badge: " + err.Error())
	}
	// Zero rows means either a missing profile or an already held badge.
	// Held badges are fine, the set is monotonic
	if ct.RowsAffected() == 0 {
		_, err := ur.GetProfile(ctx, uid)
		if err != nil {
			return err
		}
	}
	return nil
}
