package domain

// WishlistItem is one saved bid for one user. Items are created server-side
// when a bid is added to the wishlist; this client reads them, mutates their
// stage and deletes them. WishlistID is stable for the item's life and unique
// within a user's list.
type WishlistItem struct {
	WishlistID  int64    `json:"wishlistId"`
	BidID       int64    `json:"bidId"`
	Title       string   `json:"title"`
	Agency      string   `json:"agency"`
	Budget      string   `json:"budget"`
	BudgetValue int64    `json:"budgetValue"`
	Deadline    string   `json:"deadline"`
	Stage       BidStage `json:"stage"`
}
