package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/narabid/bidassist/internal/domain"
)

// The credential is a single row keyed by a fixed id, like a settings slot.
const sessionRowID = "default"

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db *sql.DB
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db *sql.DB) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Get(ctx context.Context) (*domain.Session, error) {
	query := `SELECT email, access_token, saved_at FROM session WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, sessionRowID)

	var s domain.Session
	var savedAtStr string
	err := row.Scan(&s.Email, &s.AccessToken, &savedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, savedAtStr); err == nil {
		s.SavedAt = t
	}
	return &s, nil
}

func (r *SQLiteSessionRepo) Save(ctx context.Context, s *domain.Session) error {
	query := `INSERT OR REPLACE INTO session (id, email, access_token, saved_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		sessionRowID,
		s.Email,
		s.AccessToken,
		s.SavedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE id = ?`, sessionRowID)
	if err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
