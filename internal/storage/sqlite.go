package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yourname/calorietracker/internal"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	token TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS seeded_users (
	user_id TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS food_entries (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
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
	created_at TEXT NOT NULL,
	UNIQUE (user_id, id)
);
CREATE INDEX IF NOT EXISTS idx_food_entries_user ON food_entries(user_id, seq);
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
	notifications INTEGER NOT NULL,
	weekly_reports INTEGER NOT NULL,
	dark_mode INTEGER NOT NULL,
	language TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS accounts (
	user_id TEXT PRIMARY KEY,
	email TEXT NOT NULL,
	name TEXT NOT NULL
);
`

type SQLiteStorage struct {
	db     *sql.DB
	logger internal.Logger
}

// OpenSQLite opens (creating if needed) the database at path and applies the schema.
func OpenSQLite(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

func NewSQLiteStorage(path string, logger internal.Logger) (*SQLiteStorage, error) {
	db, err := OpenSQLite(path)
	if err != nil {
		logger.Errorf("failed to open sqlite: %v", err)
		return nil, err
	}
	return &SQLiteStorage{db: db, logger: logger}, nil
}

func (s *SQLiteStorage) Close() error { return s.db.Close() }

// --- FoodEntryRepository ---
func (s *SQLiteStorage) SeedFoodEntries(ctx context.Context, userID string, entries []internal.FoodEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `INSERT INTO seeded_users (user_id) VALUES (?) ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return fmt.Errorf("mark seeded: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark seeded: %w", err)
	}
	if n == 0 {
		return nil
	}
	for _, e := range entries {
		e.UserID = userID
		if err := insertEntrySQLite(ctx, tx, &e); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertEntrySQLite(ctx context.Context, ex execer, e *internal.FoodEntry) error {
	_, err := ex.ExecContext(ctx, `
INSERT INTO food_entries (user_id, id, name, calories, protein, carbs, fats, serving, meal, time, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, id) DO UPDATE SET
	name = excluded.name, calories = excluded.calories, protein = excluded.protein,
	carbs = excluded.carbs, fats = excluded.fats, serving = excluded.serving,
	meal = excluded.meal, time = excluded.time`,
		e.UserID, e.ID, e.Name, e.Calories, e.Protein, e.Carbs, e.Fats, e.Serving, string(e.Meal), e.Time,
		e.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert food entry: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) SaveFoodEntry(ctx context.Context, entry *internal.FoodEntry) error {
	if err := insertEntrySQLite(ctx, s.db, entry); err != nil {
		s.logger.Errorf("failed to save food entry: %v", err)
		return err
	}
	return nil
}

func (s *SQLiteStorage) ListFoodEntries(ctx context.Context, userID string) ([]internal.FoodEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, user_id, name, calories, protein, carbs, fats, serving, meal, time, created_at
FROM food_entries WHERE user_id = ? ORDER BY seq`, userID)
	if err != nil {
		s.logger.Errorf("failed to query food entries: %v", err)
		return nil, fmt.Errorf("list food entries: %w", err)
	}
	defer rows.Close()

	entries := []internal.FoodEntry{}
	for rows.Next() {
		var (
			e       internal.FoodEntry
			meal    string
			created string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Calories, &e.Protein, &e.Carbs, &e.Fats, &e.Serving, &meal, &e.Time, &created); err != nil {
			return nil, fmt.Errorf("scan food entry: %w", err)
		}
		e.Meal = internal.MealCategory(meal)
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStorage) DeleteFoodEntry(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM food_entries WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("delete food entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete food entry: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- ProfileRepository ---
func (s *SQLiteStorage) SaveProfile(ctx context.Context, userID string, p *internal.ProfileData) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO profiles (user_id, age, weight, height, gender, activity_level, goal, target_weight)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET
	age = excluded.age, weight = excluded.weight, height = excluded.height, gender = excluded.gender,
	activity_level = excluded.activity_level, goal = excluded.goal, target_weight = excluded.target_weight`,
		userID, p.Age, p.Weight, p.Height, p.Gender, p.ActivityLevel, p.Goal, p.TargetWeight)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) GetProfile(ctx context.Context, userID string) (*internal.ProfileData, error) {
	var p internal.ProfileData
	err := s.db.QueryRowContext(ctx, `
SELECT age, weight, height, gender, activity_level, goal, target_weight FROM profiles WHERE user_id = ?`, userID).
		Scan(&p.Age, &p.Weight, &p.Height, &p.Gender, &p.ActivityLevel, &p.Goal, &p.TargetWeight)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// --- SettingsRepository ---
func (s *SQLiteStorage) SaveSettings(ctx context.Context, userID string, v *internal.Settings) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO settings (user_id, units, notifications, weekly_reports, dark_mode, language)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET
	units = excluded.units, notifications = excluded.notifications, weekly_reports = excluded.weekly_reports,
	dark_mode = excluded.dark_mode, language = excluded.language`,
		userID, v.Units, v.Notifications, v.WeeklyReports, v.DarkMode, v.Language)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) GetSettings(ctx context.Context, userID string) (*internal.Settings, error) {
	var v internal.Settings
	err := s.db.QueryRowContext(ctx, `
SELECT units, notifications, weekly_reports, dark_mode, language FROM settings WHERE user_id = ?`, userID).
		Scan(&v.Units, &v.Notifications, &v.WeeklyReports, &v.DarkMode, &v.Language)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &v, nil
}

func (s *SQLiteStorage) SaveAccount(ctx context.Context, userID string, a *internal.AccountInfo) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO accounts (user_id, email, name) VALUES (?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET email = excluded.email, name = excluded.name`,
		userID, a.Email, a.Name)
	if err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) GetAccount(ctx context.Context, userID string) (*internal.AccountInfo, error) {
	var a internal.AccountInfo
	err := s.db.QueryRowContext(ctx, `SELECT email, name FROM accounts WHERE user_id = ?`, userID).Scan(&a.Email, &a.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// --- UserRepository ---
func (s *SQLiteStorage) SaveUser(ctx context.Context, u *internal.User) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO users (id, token, name) VALUES (?, ?, ?)
ON CONFLICT (id) DO UPDATE SET token = excluded.token, name = excluded.name`, u.ID, u.Token, u.Name)
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) GetUserByToken(ctx context.Context, token string) (*internal.User, error) {
	var u internal.User
	err := s.db.QueryRowContext(ctx, `SELECT id, token, name FROM users WHERE token = ?`, token).Scan(&u.ID, &u.Token, &u.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// --- Compile-time assertions ---
var _ Repositories = (*SQLiteStorage)(nil)
