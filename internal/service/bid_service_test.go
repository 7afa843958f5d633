package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narabid/bidassist/internal/api"
	"github.com/narabid/bidassist/internal/domain"
	"github.com/narabid/bidassist/internal/repository"
	"github.com/narabid/bidassist/internal/testutil"
)

func TestBrowse_RemoteSuccessRefreshesCache(t *testing.T) {
	cache := repository.NewSQLiteBidCacheRepo(testutil.NewTestDB(t))
	fake := &fakeClient{listBidsFn: func(ctx context.Context, keyword string) ([]domain.Bid, error) {
		return []domain.Bid{testutil.NewTestBid(1, "Road resurfacing")}, nil
	}}
	svc := NewBidService(fake, cache)

	bids, fromCache, err := svc.Browse(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, fromCache)
	require.Len(t, bids, 1)

	cached, err := cache.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cached, 1)
}

func TestBrowse_UnreachableRemoteFallsBackToCache(t *testing.T) {
	cache := repository.NewSQLiteBidCacheRepo(testutil.NewTestDB(t))
	require.NoError(t, cache.ReplaceAll(context.Background(), []domain.Bid{
		testutil.NewTestBid(1, "Road resurfacing"),
		testutil.NewTestBid(2, "IT maintenance"),
	}))

	fake := &fakeClient{listBidsFn: func(ctx context.Context, keyword string) ([]domain.Bid, error) {
		return nil, api.ErrUnavailable
	}}
	svc := NewBidService(fake, cache)

	bids, fromCache, err := svc.Browse(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, fromCache)
	assert.Len(t, bids, 2)
}

func TestBrowse_CacheFallbackAppliesKeywordFilter(t *testing.T) {
	cache := repository.NewSQLiteBidCacheRepo(testutil.NewTestDB(t))
	require.NoError(t, cache.ReplaceAll(context.Background(), []domain.Bid{
		testutil.NewTestBid(1, "Road resurfacing"),
		testutil.NewTestBid(2, "IT maintenance"),
	}))

	fake := &fakeClient{listBidsFn: func(ctx context.Context, keyword string) ([]domain.Bid, error) {
		return nil, api.ErrTimeout
	}}
	svc := NewBidService(fake, cache)

	bids, fromCache, err := svc.Browse(context.Background(), "road")
	require.NoError(t, err)
	assert.True(t, fromCache)
	require.Len(t, bids, 1)
	assert.Equal(t, "Road resurfacing", bids[0].Name)
}

func TestBrowse_AuthFailureIsNotMaskedByCache(t *testing.T) {
	cache := repository.NewSQLiteBidCacheRepo(testutil.NewTestDB(t))
	require.NoError(t, cache.ReplaceAll(context.Background(), []domain.Bid{
		testutil.NewTestBid(1, "Road resurfacing"),
	}))

	fake := &fakeClient{listBidsFn: func(ctx context.Context, keyword string) ([]domain.Bid, error) {
		return nil, api.ErrUnauthorized
	}}
	svc := NewBidService(fake, cache)

	_, _, err := svc.Browse(context.Background(), "")
	assert.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestLatest_NoticesFallBackToCache(t *testing.T) {
	cache := repository.NewSQLiteNoticeCacheRepo(testutil.NewTestDB(t))
	require.NoError(t, cache.ReplaceAll(context.Background(), []domain.Notice{
		{NoticeID: 1, Title: "Maintenance window"},
		{NoticeID: 2, Title: "New bid sources"},
	}))

	fake := &fakeClient{listNoticesFn: func(ctx context.Context) ([]domain.Notice, error) {
		return nil, api.ErrUnavailable
	}}
	svc := NewNoticeService(fake, cache)

	notices, fromCache, err := svc.Latest(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, fromCache)
	require.Len(t, notices, 1)
	assert.Equal(t, "Maintenance window", notices[0].Title)
}
