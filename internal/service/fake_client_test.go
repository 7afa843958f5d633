package service

import (
	"context"

	"github.com/narabid/bidassist/internal/domain"
)

// fakeClient is a scriptable api.Client. Unset hooks fail the call with a
// zero-value response so tests only wire what they exercise.
type fakeClient struct {
	loginFn       func(ctx context.Context, email, password string) (string, error)
	fetchFn       func(ctx context.Context) ([]domain.WishlistItem, error)
	updateStageFn func(ctx context.Context, wishlistID int64, stage domain.BidStage) error
	deleteFn      func(ctx context.Context, wishlistID int64) error
	addFn         func(ctx context.Context, bidID int64) error
	listBidsFn    func(ctx context.Context, keyword string) ([]domain.Bid, error)
	listNoticesFn func(ctx context.Context) ([]domain.Notice, error)

	stageCalls  int
	deleteCalls int
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	if f.loginFn == nil {
		return "", nil
	}
	return f.loginFn(ctx, email, password)
}

func (f *fakeClient) FetchWishlist(ctx context.Context) ([]domain.WishlistItem, error) {
	if f.fetchFn == nil {
		return nil, nil
	}
	return f.fetchFn(ctx)
}

func (f *fakeClient) UpdateWishlistStage(ctx context.Context, wishlistID int64, stage domain.BidStage) error {
	f.stageCalls++
	if f.updateStageFn == nil {
		return nil
	}
	return f.updateStageFn(ctx, wishlistID, stage)
}

func (f *fakeClient) DeleteWishlist(ctx context.Context, wishlistID int64) error {
	f.deleteCalls++
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, wishlistID)
}

func (f *fakeClient) AddWishlist(ctx context.Context, bidID int64) error {
	if f.addFn == nil {
		return nil
	}
	return f.addFn(ctx, bidID)
}

func (f *fakeClient) ListBids(ctx context.Context, keyword string) ([]domain.Bid, error) {
	if f.listBidsFn == nil {
		return nil, nil
	}
	return f.listBidsFn(ctx, keyword)
}

func (f *fakeClient) ListNotices(ctx context.Context) ([]domain.Notice, error) {
	if f.listNoticesFn == nil {
		return nil, nil
	}
	return f.listNoticesFn(ctx)
}
