package common

import "time"

// UserProfile is a normalized platform account record.
type UserProfile struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name,omitempty"`
	Biography   string     `json:"biography,omitempty"`
	Followers   int        `json:"followers"`
	Following   int        `json:"following"`
	TweetsCount int        `json:"tweets_count"`
	Verified    bool       `json:"verified"`
	Avatar      string     `json:"avatar,omitempty"`
	Joined      *time.Time `json:"joined,omitempty"`
}
