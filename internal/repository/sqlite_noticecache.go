package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/narabid/bidassist/internal/domain"
)

// SQLiteNoticeCacheRepo implements NoticeCacheRepo using a SQLite database.
type SQLiteNoticeCacheRepo struct {
	db *sql.DB
}

// NewSQLiteNoticeCacheRepo creates a new SQLiteNoticeCacheRepo.
func NewSQLiteNoticeCacheRepo(db *sql.DB) *SQLiteNoticeCacheRepo {
	return &SQLiteNoticeCacheRepo{db: db}
}

func (r *SQLiteNoticeCacheRepo) ReplaceAll(ctx context.Context, notices []domain.Notice) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting notice cache transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM notices_cache`); err != nil {
		return fmt.Errorf("clearing notice cache: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	query := `INSERT INTO notices_cache (notice_id, title, user_name, category, created_at, fetched_at, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for i, n := range notices {
		if _, err := tx.ExecContext(ctx, query,
			n.NoticeID, n.Title, n.UserName, n.Category, n.CreatedAt, now, i,
		); err != nil {
			return fmt.Errorf("inserting cached notice: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing notice cache: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteNoticeCacheRepo) List(ctx context.Context, limit int) ([]domain.Notice, error) {
	query := `SELECT notice_id, title, user_name, category, created_at
		FROM notices_cache ORDER BY position LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing cached notices: %w", err)
	}
	defer rows.Close()

	var notices []domain.Notice
	for rows.Next() {
		var n domain.Notice
		if err := rows.Scan(&n.NoticeID, &n.Title, &n.UserName, &n.Category, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning cached notice: %w", err)
		}
		notices = append(notices, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cached notices: %w", err)
	}
	return notices, nil
}
