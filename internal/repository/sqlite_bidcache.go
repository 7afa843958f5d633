package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/narabid/bidassist/internal/domain"
)

// SQLiteBidCacheRepo implements BidCacheRepo using a SQLite database.
type SQLiteBidCacheRepo struct {
	db *sql.DB
}

// NewSQLiteBidCacheRepo creates a new SQLiteBidCacheRepo.
func NewSQLiteBidCacheRepo(db *sql.DB) *SQLiteBidCacheRepo {
	return &SQLiteBidCacheRepo{db: db}
}

// ReplaceAll swaps the cache for a fresh fetch in one transaction. The
// position column preserves the remote ordering across the round trip.
func (r *SQLiteBidCacheRepo) ReplaceAll(ctx context.Context, bids []domain.Bid) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting bid cache transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bids_cache`); err != nil {
		return fmt.Errorf("clearing bid cache: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	query := `INSERT INTO bids_cache (bid_id, real_id, name, region, organization,
		start_date, end_date, open_date, estimate_price, bid_url, fetched_at, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, b := range bids {
		if _, err := tx.ExecContext(ctx, query,
			b.BidID, b.RealID, b.Name, b.Region, b.Organization,
			b.StartDate, b.EndDate, b.OpenDate, b.EstimatePrice, b.BidURL, now, i,
		); err != nil {
			return fmt.Errorf("inserting cached bid: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing bid cache: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteBidCacheRepo) List(ctx context.Context) ([]domain.Bid, error) {
	query := `SELECT bid_id, real_id, name, region, organization,
		start_date, end_date, open_date, estimate_price, bid_url
		FROM bids_cache ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing cached bids: %w", err)
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var b domain.Bid
		if err := rows.Scan(
			&b.BidID, &b.RealID, &b.Name, &b.Region, &b.Organization,
			&b.StartDate, &b.EndDate, &b.OpenDate, &b.EstimatePrice, &b.BidURL,
		); err != nil {
			return nil, fmt.Errorf("scanning cached bid: %w", err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cached bids: %w", err)
	}
	return bids, nil
}
