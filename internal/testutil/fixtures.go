package testutil

import (
	"github.com/narabid/bidassist/internal/domain"
)

// NewTestWishlistItem builds a wishlist item with sensible defaults.
func NewTestWishlistItem(wishlistID int64, title string, stage domain.BidStage) domain.WishlistItem {
	return domain.WishlistItem{
		WishlistID:  wishlistID,
		BidID:       wishlistID + 1000,
		Title:       title,
		Agency:      "Ministry of Public Works",
		Budget:      "120,000,000 KRW",
		BudgetValue: 120_000_000,
		Deadline:    "2026-10-01",
		Stage:       stage,
	}
}

// NewTestBid builds a bid announcement with sensible defaults.
func NewTestBid(bidID int64, name string) domain.Bid {
	return domain.Bid{
		BidID:         bidID,
		RealID:        "20260001-00",
		Name:          name,
		Region:        "Seoul",
		Organization:  "Ministry of Public Works",
		StartDate:     "2026-09-01",
		EndDate:       "2026-10-01",
		OpenDate:      "2026-10-02",
		EstimatePrice: 120_000_000,
	}
}

// NewTestUserRecord builds a locally registered account with the modern
// question-index field.
func NewTestUserRecord(email, name, birthDate string, questionIndex int, answer string) domain.UserRecord {
	idx := questionIndex
	return domain.UserRecord{
		Email:     email,
		Name:      name,
		BirthDate: birthDate,
		RecoveryQA: domain.RecoveryQA{
			QuestionIndex: &idx,
			Answer:        answer,
		},
	}
}
