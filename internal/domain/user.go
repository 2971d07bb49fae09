package domain

// User is the authenticated account as returned by the gateway
type User struct {
	ID            string `json:"_id"`
	UserName      string `json:"userName"`
	Email         string `json:"email"`
	Points        int    `json:"points"`
	CurrentLeague string `json:"currentLeague,omitempty"`
	IsPublic      bool   `json:"isPublic"`
}

// FeedItem is a shareable roast from the public feed
type FeedItem struct {
	ID      string `json:"id"`
	User    string `json:"user"`
	Task    string `json:"task"`
	Roast   string `json:"roast"`
	Upvotes int    `json:"upvotes"`
	IsLiked bool   `json:"isLiked"`
	IsTop   bool   `json:"isTop"`
}

// LeaderboardEntry is one ranked row of the leaderboard
type LeaderboardEntry struct {
	UserID   string `json:"userId"`
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}

// FeedScope selects which feed the gateway returns
type FeedScope string

const (
	ScopeGlobal  FeedScope = "global"
	ScopeFriends FeedScope = "friends"
)
