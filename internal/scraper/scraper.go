package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	twitterscraper "github.com/lueurxax/twitter-scraper"

	"github.com/sentinelgraph/sentinel-scraper/internal/common"
	"github.com/sentinelgraph/sentinel-scraper/internal/log"
)

const (
	tooManyRequests = "429 Too Many Requests"
	notFound        = "not found"
	createdKey      = "created"
	countKey        = "count"
	queryKey        = "query"
	batchInterval   = 50
)

// Scraper is a single collection worker bound to one platform account.
type Scraper interface {
	Search(ctx context.Context, query string, limit int) ([]common.TweetSnapshot, error)
	UserTimeline(ctx context.Context, username string, limit int) ([]common.TweetSnapshot, error)
	GetUser(ctx context.Context, username string) (*common.UserProfile, error)
	TweetDetails(ctx context.Context, id string) (*common.TweetSnapshot, error)
	CurrentDelay() int64
}

type delayManager interface {
	TooManyRequests(ctx context.Context)
	AfterRequest()
	ProcessedQuery()
	CurrentDelay() int64
}

type worker struct {
	scraper *twitterscraper.Scraper
	delayManager

	log log.Logger
}

func (w *worker) Search(ctx context.Context, query string, limit int) ([]common.TweetSnapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fullQuery := fmt.Sprintf("%s -filter:retweets", query)

	w.log.WithField(queryKey, fullQuery).Debug("searching")

	return w.consume(ctx, w.scraper.SearchTweets(ctx, fullQuery, limit), query)
}

func (w *worker) UserTimeline(ctx context.Context, username string, limit int) ([]common.TweetSnapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w.log.WithField("username", username).Debug("reading timeline")

	return w.consume(ctx, w.scraper.GetTweets(ctx, username, limit), "")
}

func (w *worker) GetUser(ctx context.Context, username string) (*common.UserProfile, error) {
	profile, err := w.scraper.GetProfile(ctx, username)
	if err != nil {
		if strings.Contains(err.Error(), tooManyRequests) {
			w.delayManager.TooManyRequests(ctx)
		}

		if strings.Contains(err.Error(), notFound) {
			return nil, common.ErrUserNotFound
		}

		w.log.WithField("username", username).WithError(err).Error("error while getting profile")

		return nil, err
	}

	w.delayManager.AfterRequest()

	return NormalizeProfile(&profile), nil
}

func (w *worker) TweetDetails(ctx context.Context, id string) (*common.TweetSnapshot, error) {
	tweet, err := w.scraper.GetTweet(ctx, id)
	if err != nil {
		if strings.Contains(err.Error(), tooManyRequests) {
			w.delayManager.TooManyRequests(ctx)
		}

		if strings.Contains(err.Error(), notFound) {
			return nil, ErrNotFound
		}

		w.log.WithField("id", id).WithError(err).Error("error while getting tweet")

		return nil, err
	}

	w.delayManager.AfterRequest()

	return &common.TweetSnapshot{
		Tweet:     NormalizeTweet(tweet, ""),
		CheckedAt: time.Now(),
	}, nil
}

func (w *worker) consume(
	ctx context.Context,
	tweetsCh <-chan *twitterscraper.TweetResult,
	query string,
) ([]common.TweetSnapshot, error) {
	response := make([]common.TweetSnapshot, 0)
	counter := 0
	lastTweetTime := time.Now()

	for tweet := range tweetsCh {
		if tweet.Error != nil {
			if strings.Contains(tweet.Error.Error(), tooManyRequests) {
				w.delayManager.TooManyRequests(ctx)
				return response, nil
			}

			return nil, tweet.Error
		}

		syncTime := time.Now()

		if counter%batchInterval == 0 {
			w.log.
				WithField(createdKey, tweet.TimeParsed).
				WithField(countKey, counter).
				Debug("processed tweets")
			w.delayManager.AfterRequest()
		}

		counter++

		response = append(response, common.TweetSnapshot{
			Tweet:     NormalizeTweet(&tweet.Tweet, query),
			CheckedAt: syncTime,
		})

		lastTweetTime = tweet.TimeParsed
	}

	w.delayManager.ProcessedQuery()

	w.log.WithField(createdKey, lastTweetTime).Debug("last tweet")
	w.log.WithField(countKey, counter).Debug("tweets found")

	return response, nil
}

func NewWorker(scraper *twitterscraper.Scraper, delayManager delayManager, logger log.Logger) Scraper {
	return &worker{
		scraper:      scraper,
		delayManager: delayManager,
		log:          logger,
	}
}
