package scraper

import (
	"strings"

	twitterscraper "github.com/lueurxax/twitter-scraper"

	"github.com/sentinelgraph/sentinel-scraper/internal/common"
)

// NormalizeTweet converts a raw library tweet into the internal record.
// The query that produced the tweet is stamped on the record so downstream
// consumers can group snapshots without re-deriving the search.
func NormalizeTweet(t *twitterscraper.Tweet, query string) *common.Tweet {
	return &common.Tweet{
		ID:           t.ID,
		Text:         strings.TrimSpace(t.Text),
		Username:     t.Username,
		DisplayName:  strings.TrimSpace(t.Name),
		UserID:       t.UserID,
		Likes:        t.Likes,
		Retweets:     t.Retweets,
		Replies:      t.Replies,
		Views:        t.Views,
		PermanentURL: t.PermanentURL,
		TimeParsed:   t.TimeParsed,
		Timestamp:    t.Timestamp,
		Query:        query,
		Photos:       normalizePhotos(t.Photos),
		Videos:       normalizeVideos(t.Videos),
	}
}

// NormalizeProfile converts a raw library profile into the internal record.
func NormalizeProfile(p *twitterscraper.Profile) *common.UserProfile {
	return &common.UserProfile{
		ID:          p.UserID,
		Username:    p.Username,
		DisplayName: strings.TrimSpace(p.Name),
		Biography:   strings.TrimSpace(p.Biography),
		Followers:   p.FollowersCount,
		Following:   p.FollowingCount,
		TweetsCount: p.TweetsCount,
		Verified:    p.IsVerified,
		Avatar:      p.Avatar,
		Joined:      p.Joined,
	}
}

func normalizePhotos(photos []twitterscraper.Photo) []common.Photo {
	if len(photos) == 0 {
		return nil
	}

	res := make([]common.Photo, len(photos))
	for i, photo := range photos {
		res[i] = common.Photo{
			ID:  photo.ID,
			URL: photo.URL,
		}
	}

	return res
}

func normalizeVideos(videos []twitterscraper.Video) []common.Video {
	if len(videos) == 0 {
		return nil
	}

	res := make([]common.Video, len(videos))
	for i, video := range videos {
		res[i] = common.Video{
			ID:      video.ID,
			Preview: video.Preview,
			URL:     video.URL,
		}
	}

	return res
}
