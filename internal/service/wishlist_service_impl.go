package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/narabid/bidassist/internal/api"
	"github.com/narabid/bidassist/internal/domain"
)

type wishlistService struct {
	client api.Client

	mu    sync.Mutex
	items []domain.WishlistItem
	// pending maps an action token to the wishlist id it touches. One entry
	// per in-flight mutation, so two actions on different items are visible
	// as two independent pending states instead of one global busy flag.
	pending map[string]int64
}

// NewWishlistService creates a WishlistService backed by the remote store.
func NewWishlistService(client api.Client) WishlistService {
	return &wishlistService{
		client:  client,
		pending: make(map[string]int64),
	}
}

func (s *wishlistService) List(ctx context.Context) ([]domain.WishlistItem, error) {
	items, err := s.client.FetchWishlist(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return s.Items(), nil
}

func (s *wishlistService) Items() []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *wishlistService) SetStage(ctx context.Context, wishlistID int64, stage domain.BidStage) error {
	if !stage.IsValid() {
		// An out-of-set stage can only come from a programming error or a
		// stale widget; it is dropped before any request is issued.
		return nil
	}

	token := s.begin(wishlistID)
	defer s.end(token)

	if err := s.client.UpdateWishlistStage(ctx, wishlistID, stage); err != nil {
		return err
	}

	// The server accepted the change; reconcile just the touched item
	// rather than re-fetching the whole list.
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].WishlistID == wishlistID {
			s.items[i].Stage = stage
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *wishlistService) Remove(ctx context.Context, wishlistID int64) error {
	token := s.begin(wishlistID)
	defer s.end(token)

	if err := s.client.DeleteWishlist(ctx, wishlistID); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.WishlistID != wishlistID {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return nil
}

func (s *wishlistService) Add(ctx context.Context, bidID int64) error {
	token := s.begin(0)
	defer s.end(token)

	if err := s.client.AddWishlist(ctx, bidID); err != nil {
		return err
	}

	// The new item's wishlist id is assigned server-side, so a full
	// re-fetch is the only way to learn it.
	items, err := s.client.FetchWishlist(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *wishlistService) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending) > 0
}

func (s *wishlistService) ItemBusy(wishlistID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.pending {
		if id == wishlistID {
			return true
		}
	}
	return false
}

// begin registers an in-flight mutation and returns its action token.
func (s *wishlistService) begin(wishlistID int64) string {
	token := uuid.New().String()
	s.mu.Lock()
	s.pending[token] = wishlistID
	s.mu.Unlock()
	return token
}

// end clears the pending entry whatever the request's outcome was.
func (s *wishlistService) end(token string) {
	s.mu.Lock()
	delete(s.pending, token)
	s.mu.Unlock()
}
