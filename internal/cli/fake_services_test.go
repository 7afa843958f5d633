package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/narabid/bidassist/internal/domain"
	"github.com/narabid/bidassist/internal/testutil"
)

// ── fake services ────────────────────────────────────────────────────────────

type fakeWishlist struct {
	items      []domain.WishlistItem
	stageCalls int
	listErr    error
	mutateErr  error
	busyIDs    map[int64]bool
}

func newFakeWishlist(items ...domain.WishlistItem) *fakeWishlist {
	return &fakeWishlist{items: items, busyIDs: map[int64]bool{}}
}

func (f *fakeWishlist) List(ctx context.Context) ([]domain.WishlistItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.WishlistItem(nil), f.items...), nil
}

func (f *fakeWishlist) Items() []domain.WishlistItem {
	return append([]domain.WishlistItem(nil), f.items...)
}

func (f *fakeWishlist) SetStage(ctx context.Context, id int64, stage domain.BidStage) error {
	if !stage.IsValid() {
		return nil
	}
	f.stageCalls++
	if f.mutateErr != nil {
		return f.mutateErr
	}
	for i := range f.items {
		if f.items[i].WishlistID == id {
			f.items[i].Stage = stage
		}
	}
	return nil
}

func (f *fakeWishlist) Remove(ctx context.Context, id int64) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	kept := f.items[:0]
	for _, it := range f.items {
		if it.WishlistID != id {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeWishlist) Add(ctx context.Context, bidID int64) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	id := int64(len(f.items) + 100)
	f.items = append(f.items, testutil.NewTestWishlistItem(id, fmt.Sprintf("Added bid %d", bidID), domain.StageInterest))
	return nil
}

func (f *fakeWishlist) Busy() bool { return len(f.busyIDs) > 0 }
func (f *fakeWishlist) ItemBusy(id int64) bool {
	return f.busyIDs[id]
}

type fakeAuth struct {
	email    string
	signedIn bool
	loginErr error
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.email = email
	f.signedIn = true
	return nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.email = ""
	f.signedIn = false
	return nil
}

func (f *fakeAuth) Token() string {
	if !f.signedIn {
		return ""
	}
	return "test-token"
}

func (f *fakeAuth) Email() string       { return f.email }
func (f *fakeAuth) Authenticated() bool { return f.signedIn }

type fakeBids struct {
	bids      []domain.Bid
	fromCache bool
	err       error
}

func (f *fakeBids) Browse(ctx context.Context, keyword string) ([]domain.Bid, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	if keyword == "" {
		return f.bids, f.fromCache, nil
	}
	var matched []domain.Bid
	for _, b := range f.bids {
		if containsFold(b.Name, keyword) || containsFold(b.Organization, keyword) {
			matched = append(matched, b)
		}
	}
	return matched, f.fromCache, nil
}

type fakeNotices struct {
	notices   []domain.Notice
	fromCache bool
	err       error
}

func (f *fakeNotices) Latest(ctx context.Context, limit int) ([]domain.Notice, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	if limit > 0 && len(f.notices) > limit {
		return f.notices[:limit], f.fromCache, nil
	}
	return f.notices, f.fromCache, nil
}

type fakeUsers struct {
	records []domain.UserRecord
}

func (f *fakeUsers) ReadUsers() []domain.UserRecord { return f.records }

// ── app construction ─────────────────────────────────────────────────────────

func intPtr(i int) *int { return &i }

func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Auth: &fakeAuth{email: "kim@example.com", signedIn: true},
		Wishlist: newFakeWishlist(
			testutil.NewTestWishlistItem(1, "Road resurfacing", domain.StageInterest),
			testutil.NewTestWishlistItem(2, "IT maintenance", domain.StageReview),
			testutil.NewTestWishlistItem(3, "School renovation", domain.StageDocPrep),
		),
		Bids: &fakeBids{bids: []domain.Bid{
			testutil.NewTestBid(1001, "Bridge inspection"),
			testutil.NewTestBid(1002, "Harbor dredging"),
		}},
		Notices: &fakeNotices{notices: []domain.Notice{
			{NoticeID: 1, Title: "Maintenance window", UserName: "admin", CreatedAt: "2026-08-01"},
			{NoticeID: 2, Title: "New bid sources", UserName: "admin", CreatedAt: "2026-08-02"},
		}},
		Users: &fakeUsers{records: []domain.UserRecord{
			{
				Email:     "kim@example.com",
				Name:      "Kim Dae-su",
				BirthDate: "1990-01-01",
				RecoveryQA: domain.RecoveryQA{
					QuestionIndex: intPtr(1),
					Answer:        "bingo",
				},
			},
		}},
		IsInteractive: func() bool { return true },
	}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
