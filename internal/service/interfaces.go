package service

import (
	"context"

	"github.com/narabid/bidassist/internal/domain"
)

// WishlistService is the stage tracker: it mirrors the remote wishlist in
// memory and applies item-scoped mutations against the remote store.
type WishlistService interface {
	// List fetches the current wishlist from the remote store, replacing
	// the in-memory mirror. Remote ordering is preserved.
	List(ctx context.Context) ([]domain.WishlistItem, error)

	// Items returns the current in-memory mirror without a remote call.
	Items() []domain.WishlistItem

	// SetStage requests a stage change for one item. A stage outside the
	// closed set is a silent no-op: no request, no state change, nil error.
	// On success only the touched item is updated in memory; on failure
	// memory is untouched and the error is returned for display.
	SetStage(ctx context.Context, wishlistID int64, stage domain.BidStage) error

	// Remove requests deletion of one item. On success exactly that item
	// leaves the in-memory mirror; on failure memory is untouched and the
	// error is returned for display.
	Remove(ctx context.Context, wishlistID int64) error

	// Add asks the server to save a bid to the wishlist, then refreshes
	// the mirror (creation is server-side; the new item's id is assigned
	// remotely).
	Add(ctx context.Context, bidID int64) error

	// Busy reports whether any mutation is in flight. ItemBusy narrows
	// that to a single item so views can mark just the touched row.
	Busy() bool
	ItemBusy(wishlistID int64) bool
}

// AuthService owns the stored remote credential.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	// Token returns the stored access token, or "" when signed out.
	Token() string
	// Email returns the signed-in account, or "" when signed out.
	Email() string
	Authenticated() bool
}

// BidService browses bid announcements, falling back to the local cache
// when the remote store is unreachable.
type BidService interface {
	Browse(ctx context.Context, keyword string) ([]domain.Bid, bool, error)
}

// NoticeService fetches dashboard notices with the same cache fallback.
type NoticeService interface {
	Latest(ctx context.Context, limit int) ([]domain.Notice, bool, error)
}
