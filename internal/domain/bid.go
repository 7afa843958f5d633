package domain

// Bid is a public bid announcement as served by the remote store. The client
// never mutates bids; it only browses them and asks the server to save one
// to the wishlist.
type Bid struct {
	BidID         int64  `json:"id"`
	RealID        string `json:"realId"`
	Name          string `json:"name"`
	Region        string `json:"region"`
	Organization  string `json:"organization"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	OpenDate      string `json:"openDate"`
	EstimatePrice int64  `json:"estimatePrice"`
	BidURL        string `json:"bidURL"`
}
