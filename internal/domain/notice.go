package domain

// Notice is a community/notice board post shown on the dashboard.
type Notice struct {
	NoticeID  int64  `json:"id"`
	Title     string `json:"title"`
	UserName  string `json:"userName"`
	Category  string `json:"category"`
	CreatedAt string `json:"createdAt"`
}
