package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/talantmuenster/telebot/internal/model"
)

// SQLite is the local fallback Store implementation, used when no
// document-store credentials are configured.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database file and bootstraps
// the schema.
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS submissions (
		id TEXT PRIMARY KEY,
		chat_id INTEGER NOT NULL,
		text TEXT NOT NULL,
		photo TEXT,
		favorite INTEGER NOT NULL DEFAULT 0,
		selected INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	);`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating submissions table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSubmission(scanner rowScanner) (*model.Submission, error) {
	var (
		sub       model.Submission
		favorite  int
		selected  int
		createdAt int64
	)
	err := scanner.Scan(&sub.ID, &sub.ChatID, &sub.Text, &sub.PhotoID, &favorite, &selected, &createdAt)
	if err != nil {
		return nil, err
	}
	sub.Favorite = favorite == 1
	sub.Selected = selected == 1
	sub.CreatedAt = time.Unix(0, createdAt).UTC()
	return &sub, nil
}

func (s *SQLite) Create(ctx context.Context, sub *model.Submission) (*model.Submission, error) {
	stored := *sub
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()

	stmt, err := s.db.PrepareContext(ctx, `INSERT INTO submissions(
		id, chat_id, text, photo, favorite, selected, created_at
	) VALUES(?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		stored.ID, stored.ChatID, stored.Text, stored.PhotoID,
		boolToInt(stored.Favorite), boolToInt(stored.Selected), stored.CreatedAt.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting submission: %w", err)
	}
	return &stored, nil
}

func (s *SQLite) List(ctx context.Context, filter model.Filter) ([]*model.Submission, error) {
	query := `SELECT id, chat_id, text, COALESCE(photo, '') as photo, favorite, selected, created_at
	FROM submissions`
	switch filter {
	case model.FilterFavorite:
		query += " WHERE favorite = 1"
	case model.FilterSelected:
		query += " WHERE selected = 1"
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var subs []*model.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *SQLite) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, chat_id, text, COALESCE(photo, '') as photo, favorite, selected, created_at
	FROM submissions WHERE id = ?`, id)

	sub, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching submission %s: %w", id, err)
	}
	return sub, nil
}

func (s *SQLite) Update(ctx context.Context, id string, updates Updates) error {
	if updates.IsEmpty() {
		return nil
	}
	if updates.Favorite != nil {
		if _, err := s.db.ExecContext(ctx, "UPDATE submissions SET favorite = ? WHERE id = ?", boolToInt(*updates.Favorite), id); err != nil {
			return fmt.Errorf("updating submission %s: %w", id, err)
		}
	}
	if updates.Selected != nil {
		if _, err := s.db.ExecContext(ctx, "UPDATE submissions SET selected = ? WHERE id = ?", boolToInt(*updates.Selected), id); err != nil {
			return fmt.Errorf("updating submission %s: %w", id, err)
		}
	}
	return nil
}

func (s *SQLite) Close(ctx context.Context) error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
