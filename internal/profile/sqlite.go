// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

// SQLiteStore persists profiles and analyses in a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and ensures the
// schema exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id TEXT PRIMARY KEY,
			skin_type TEXT NOT NULL,
			concerns TEXT NOT NULL,
			allergies TEXT NOT NULL,
			lifestyle TEXT NOT NULL,
			additional_info TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS analyses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			product_name TEXT,
			created_at TEXT NOT NULL,
			ingredients TEXT NOT NULL,
			verdicts TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_user ON analyses(user_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// GetProfile returns the stored profile, or (nil, nil) when userID has
// none.
func (s *SQLiteStore) GetProfile(ctx context.Context, userID string) (*types.UserProfile, error) {
	var (
		p                              types.UserProfile
		concerns, allergies, lifestyle string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT user_id, skin_type, concerns, allergies, lifestyle, additional_info
		 FROM profiles WHERE user_id = ?`, userID,
	).Scan(&p.UserID, &p.SkinType, &concerns, &allergies, &lifestyle, &p.AdditionalInfo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	if err := json.Unmarshal([]byte(concerns), &p.Concerns); err != nil {
		return nil, fmt.Errorf("parsing concerns: %w", err)
	}
	if err := json.Unmarshal([]byte(allergies), &p.Allergies); err != nil {
		return nil, fmt.Errorf("parsing allergies: %w", err)
	}
	if err := json.Unmarshal([]byte(lifestyle), &p.Lifestyle); err != nil {
		return nil, fmt.Errorf("parsing lifestyle: %w", err)
	}
	return &p, nil
}

// PutProfile upserts the profile keyed by its UserID.
func (s *SQLiteStore) PutProfile(ctx context.Context, p types.UserProfile) error {
	if p.UserID == "" {
		return fmt.Errorf("profile has no user ID")
	}
	if !types.ValidSkinType(p.SkinType) {
		return fmt.Errorf("invalid skin type %q", p.SkinType)
	}

	concerns, _ := json.Marshal(p.Concerns)
	allergies, _ := json.Marshal(p.Allergies)
	lifestyle, _ := json.Marshal(p.Lifestyle)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, skin_type, concerns, allergies, lifestyle, additional_info)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
			skin_type=excluded.skin_type, concerns=excluded.concerns,
			allergies=excluded.allergies, lifestyle=excluded.lifestyle,
			additional_info=excluded.additional_info`,
		p.UserID, string(p.SkinType), string(concerns), string(allergies),
		string(lifestyle), p.AdditionalInfo,
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

// AddAnalysis records one completed analysis for later review.
func (s *SQLiteStore) AddAnalysis(ctx context.Context, rec types.AnalysisRecord) (int64, error) {
	ingredients, _ := json.Marshal(rec.Ingredients)
	verdicts, _ := json.Marshal(rec.Verdicts)

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (user_id, product_name, created_at, ingredients, verdicts)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.UserID, rec.ProductName, createdAt.Format(time.RFC3339Nano),
		string(ingredients), string(verdicts),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting analysis: %w", err)
	}
	return res.LastInsertId()
}

// ListAnalyses returns past analyses for userID, most recent first.
func (s *SQLiteStore) ListAnalyses(ctx context.Context, userID string, limit int) ([]types.AnalysisRecord, error) {
	q := `SELECT id, user_id, product_name, created_at, ingredients, verdicts
	      FROM analyses WHERE user_id = ? ORDER BY id DESC`
	args := []any{userID}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying analyses: %w", err)
	}
	defer rows.Close()

	var records []types.AnalysisRecord
	for rows.Next() {
		var (
			rec                              types.AnalysisRecord
			createdAt, ingredients, verdicts string
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.ProductName, &createdAt, &ingredients, &verdicts); err != nil {
			return nil, fmt.Errorf("scanning analysis: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			rec.CreatedAt = t
		}
		if err := json.Unmarshal([]byte(ingredients), &rec.Ingredients); err != nil {
			return nil, fmt.Errorf("parsing analysis ingredients: %w", err)
		}
		if err := json.Unmarshal([]byte(verdicts), &rec.Verdicts); err != nil {
			return nil, fmt.Errorf("parsing analysis verdicts: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
