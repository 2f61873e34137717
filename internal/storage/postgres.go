package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourname/calorietracker/internal"
)

// PostgresSchema is applied by Migrate; the tables mirror the sqlite backend.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	token TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS seeded_users (
	user_id TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS food_entries (
	seq BIGSERIAL PRIMARY KEY,
	user_id TEXT NOT NULL,
	id TEXT NOT NULL,
	name TEXT NOT NULL,
	calories INTEGER NOT NULL CHECK (calories >= 0),
	protein INTEGER NOT NULL CHECK (protein >= 0),
	carbs INTEGER NOT NULL CHECK (carbs >= 0),
	fats INTEGER NOT NULL CHECK (fats >= 0),
	serving TEXT NOT NULL DEFAULT '',
	meal TEXT NOT NULL CHECK (meal IN ('breakfast','lunch','dinner','snack')),
	time TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	UNIQUE (user_id, id)
);
CREATE TABLE IF NOT EXISTS profiles (
	user_id TEXT PRIMARY KEY,
	age TEXT NOT NULL,
	weight TEXT NOT NULL,
	height TEXT NOT NULL,
	gender TEXT NOT NULL,
	activity_level TEXT NOT NULL,
	goal TEXT NOT NULL,
	target_weight TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS settings (
	user_id TEXT PRIMARY KEY,
	units TEXT NOT NULL,
	notifications BOOLEAN NOT NULL,
	weekly_reports BOOLEAN NOT NULL,
	dark_mode BOOLEAN NOT NULL,
	language TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS accounts (
	user_id TEXT PRIMARY KEY,
	email TEXT NOT NULL,
	name TEXT NOT NULL
);
`

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(ctx context.Context, dsn string, logger internal.Logger) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	p := &PostgresStorage{pool: pool, logger: logger}
	if err := p.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *PostgresStorage) Migrate(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, PostgresSchema); err != nil {
		p.logger.Errorf("failed to apply schema: %v", err)
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

const pgUpsertEntry = `
INSERT INTO food_entries (user_id, id, name, calories, protein, carbs, fats, serving, meal, time, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (user_id, id) DO UPDATE SET
	name = EXCLUDED.name, calories = EXCLUDED.calories, protein = EXCLUDED.protein,
	carbs = EXCLUDED.carbs, fats = EXCLUDED.fats, serving = EXCLUDED.serving,
	meal = EXCLUDED.meal, time = EXCLUDED.time`

func entryArgs(e *internal.FoodEntry) []any {
	return []any{e.UserID, e.ID, e.Name, e.Calories, e.Protein, e.Carbs, e.Fats, e.Serving, string(e.Meal), e.Time, e.CreatedAt}
}

// --- FoodEntryRepository ---
func (p *PostgresStorage) SeedFoodEntries(ctx context.Context, userID string, entries []internal.FoodEntry) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `INSERT INTO seeded_users (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return fmt.Errorf("mark seeded: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, e := range entries {
		e.UserID = userID
		batch.Queue(pgUpsertEntry, entryArgs(&e)...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		p.logger.Errorf("failed to seed food entries: %v", err)
		return fmt.Errorf("seed food entries: %w", err)
	}
	return tx.Commit(ctx)
}

func (p *PostgresStorage) SaveFoodEntry(ctx context.Context, entry *internal.FoodEntry) error {
	if _, err := p.pool.Exec(ctx, pgUpsertEntry, entryArgs(entry)...); err != nil {
		p.logger.Errorf("failed to insert food entry: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListFoodEntries(ctx context.Context, userID string) ([]internal.FoodEntry, error) {
	rows, err := p.pool.Query(ctx, `
SELECT id, user_id, name, calories, protein, carbs, fats, serving, meal, time, created_at
FROM food_entries WHERE user_id = $1 ORDER BY seq`, userID)
	if err != nil {
		p.logger.Errorf("failed to query food entries: %v", err)
		return nil, err
	}
	defer rows.Close()

	entries := []internal.FoodEntry{}
	for rows.Next() {
		var e internal.FoodEntry
		var meal string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Calories, &e.Protein, &e.Carbs, &e.Fats, &e.Serving, &meal, &e.Time, &e.CreatedAt); err != nil {
			p.logger.Errorf("failed to scan food entry: %v", err)
			return nil, err
		}
		e.Meal = internal.MealCategory(meal)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (p *PostgresStorage) DeleteFoodEntry(ctx context.Context, userID, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM food_entries WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		p.logger.Errorf("failed to delete food entry: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- ProfileRepository ---
func (p *PostgresStorage) SaveProfile(ctx context.Context, userID string, v *internal.ProfileData) error {
	_, err := p.pool.Exec(ctx, `
INSERT INTO profiles (user_id, age, weight, height, gender, activity_level, goal, target_weight)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (user_id) DO UPDATE SET
	age = EXCLUDED.age, weight = EXCLUDED.weight, height = EXCLUDED.height, gender = EXCLUDED.gender,
	activity_level = EXCLUDED.activity_level, goal = EXCLUDED.goal, target_weight = EXCLUDED.target_weight`,
		userID, v.Age, v.Weight, v.Height, v.Gender, v.ActivityLevel, v.Goal, v.TargetWeight)
	if err != nil {
		p.logger.Errorf("failed to save profile: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) GetProfile(ctx context.Context, userID string) (*internal.ProfileData, error) {
	var v internal.ProfileData
	err := p.pool.QueryRow(ctx, `
SELECT age, weight, height, gender, activity_level, goal, target_weight FROM profiles WHERE user_id = $1`, userID).
		Scan(&v.Age, &v.Weight, &v.Height, &v.Gender, &v.ActivityLevel, &v.Goal, &v.TargetWeight)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		p.logger.Errorf("failed to get profile: %v", err)
		return nil, err
	}
	return &v, nil
}

// --- SettingsRepository ---
func (p *PostgresStorage) SaveSettings(ctx context.Context, userID string, v *internal.Settings) error {
	_, err := p.pool.Exec(ctx, `
INSERT INTO settings (user_id, units, notifications, weekly_reports, dark_mode, language)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id) DO UPDATE SET
	units = EXCLUDED.units, notifications = EXCLUDED.notifications, weekly_reports = EXCLUDED.weekly_reports,
	dark_mode = EXCLUDED.dark_mode, language = EXCLUDED.language`,
		userID, v.Units, v.Notifications, v.WeeklyReports, v.DarkMode, v.Language)
	if err != nil {
		p.logger.Errorf("failed to save settings: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) GetSettings(ctx context.Context, userID string) (*internal.Settings, error) {
	var v internal.Settings
	err := p.pool.QueryRow(ctx, `
SELECT units, notifications, weekly_reports, dark_mode, language FROM settings WHERE user_id = $1`, userID).
		Scan(&v.Units, &v.Notifications, &v.WeeklyReports, &v.DarkMode, &v.Language)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		p.logger.Errorf("failed to get settings: %v", err)
		return nil, err
	}
	return &v, nil
}

func (p *PostgresStorage) SaveAccount(ctx context.Context, userID string, a *internal.AccountInfo) error {
	_, err := p.pool.Exec(ctx, `
INSERT INTO accounts (user_id, email, name) VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET email = EXCLUDED.email, name = EXCLUDED.name`, userID, a.Email, a.Name)
	if err != nil {
		p.logger.Errorf("failed to save account: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) GetAccount(ctx context.Context, userID string) (*internal.AccountInfo, error) {
	var a internal.AccountInfo
	err := p.pool.QueryRow(ctx, `SELECT email, name FROM accounts WHERE user_id = $1`, userID).Scan(&a.Email, &a.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		p.logger.Errorf("failed to get account: %v", err)
		return nil, err
	}
	return &a, nil
}

// --- UserRepository ---
func (p *PostgresStorage) SaveUser(ctx context.Context, u *internal.User) error {
	_, err := p.pool.Exec(ctx, `
INSERT INTO users (id, token, name) VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET token = EXCLUDED.token, name = EXCLUDED.name`, u.ID, u.Token, u.Name)
	if err != nil {
		p.logger.Errorf("failed to save user: %v", err)
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (p *PostgresStorage) GetUserByToken(ctx context.Context, token string) (*internal.User, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, token, name FROM users WHERE token = $1`, token)
	var u internal.User
	if err := row.Scan(&u.ID, &u.Token, &u.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("user not found: %v", err)
		return nil, err
	}
	return &u, nil
}

// --- Compile-time assertions ---
var _ Repositories = (*PostgresStorage)(nil)
