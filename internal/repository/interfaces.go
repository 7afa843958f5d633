package repository

import (
	"context"
	"errors"

	"github.com/narabid/bidassist/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// SessionRepo stores the single remote credential for this installation.
type SessionRepo interface {
	Get(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, s *domain.Session) error
	Clear(ctx context.Context) error
}

// BidCacheRepo holds the last fetched bid announcements so browsing keeps
// working when the remote store is unreachable.
type BidCacheRepo interface {
	ReplaceAll(ctx context.Context, bids []domain.Bid) error
	List(ctx context.Context) ([]domain.Bid, error)
}

// NoticeCacheRepo holds the last fetched notices for the dashboard.
type NoticeCacheRepo interface {
	ReplaceAll(ctx context.Context, notices []domain.Notice) error
	List(ctx context.Context, limit int) ([]domain.Notice, error)
}
