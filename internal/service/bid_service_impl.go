package service

import (
	"context"
	"errors"
	"strings"

	"github.com/narabid/bidassist/internal/api"
	"github.com/narabid/bidassist/internal/domain"
	"github.com/narabid/bidassist/internal/repository"
)

type bidService struct {
	client api.Client
	cache  repository.BidCacheRepo
}

// NewBidService creates a BidService with an offline cache fallback.
func NewBidService(client api.Client, cache repository.BidCacheRepo) BidService {
	return &bidService{client: client, cache: cache}
}

// Browse returns announcements matching keyword. The second return value is
// true when the result came from the local cache because the remote store
// was unreachable or timed out.
func (s *bidService) Browse(ctx context.Context, keyword string) ([]domain.Bid, bool, error) {
	bids, err := s.client.ListBids(ctx, keyword)
	if err == nil {
		if keyword == "" {
			// Cache refresh is best effort; a failed write must not hide
			// a successful fetch.
			_ = s.cache.ReplaceAll(ctx, bids)
		}
		return bids, false, nil
	}

	if !errors.Is(err, api.ErrUnavailable) && !errors.Is(err, api.ErrTimeout) {
		return nil, false, err
	}

	cached, cacheErr := s.cache.List(ctx)
	if cacheErr != nil {
		return nil, false, err
	}
	return filterBids(cached, keyword), true, nil
}

// filterBids applies the keyword filter locally, matching the remote
// store's name/organization search.
func filterBids(bids []domain.Bid, keyword string) []domain.Bid {
	if keyword == "" {
		return bids
	}
	want := strings.ToLower(keyword)
	var out []domain.Bid
	for _, b := range bids {
		if strings.Contains(strings.ToLower(b.Name), want) ||
			strings.Contains(strings.ToLower(b.Organization), want) {
			out = append(out, b)
		}
	}
	return out
}
