package common

import (
	"fmt"
	"time"
)

// Tweet is a normalized platform post record.
type Tweet struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name,omitempty"`
	UserID       string    `json:"user_id,omitempty"`
	Likes        int       `json:"likes"`
	Retweets     int       `json:"retweets"`
	Replies      int       `json:"replies"`
	Views        int       `json:"views"`
	PermanentURL string    `json:"permanent_url,omitempty"`
	TimeParsed   time.Time `json:"time_parsed"`
	Timestamp    int64     `json:"timestamp"`
	Query        string    `json:"scraped_with_query,omitempty"`
	Photos       []Photo   `json:"photos,omitempty"`
	Videos       []Video   `json:"videos,omitempty"`
}

// Photo type.
type Photo struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Video type.
type Video struct {
	ID      string `json:"id"`
	Preview string `json:"preview,omitempty"`
	URL     string `json:"url"`
}

// TweetSnapshot binds a normalized tweet to the moment it was collected.
type TweetSnapshot struct {
	*Tweet
	CheckedAt time.Time `json:"checked_at"`
}

func (t TweetSnapshot) String() string {
	return fmt.Sprintf(
		"TweetSnapshot{ID: %s, CreatedAt: %s, CheckedAt: %s}",
		t.ID, t.TimeParsed.Format(time.RFC3339), t.CheckedAt.Format(time.RFC3339),
	)
}
