package common

import (
	"strings"
	"testing"
	"time"

	nested "github.com/antonfisher/nested-logrus-formatter"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinelgraph/sentinel-scraper/internal/log"
)

func TestTweetSnapshot_String(t1 *testing.T) {
	t1.Run("logrus nested formatter", func(t1 *testing.T) {
		// init logger
		logrusLogger := logrus.New()
		logrusLogger.SetFormatter(&nested.Formatter{
			TimestampFormat: "01-02|15:04:05",
		})

		logger := log.NewLogger(logrusLogger)
		t := TweetSnapshot{
			Tweet: &Tweet{
				ID:         "123",
				TimeParsed: time.Now(),
			},
			CheckedAt: time.Now(),
		}
		logger.WithField("tweet", t).Info("test")
	})

	t1.Run("contains id and rfc3339 timestamps", func(t1 *testing.T) {
		created := time.Date(2024, 11, 8, 20, 0, 0, 0, time.UTC)
		s := TweetSnapshot{
			Tweet:     &Tweet{ID: "1989415450447679764", TimeParsed: created},
			CheckedAt: created.Add(time.Minute),
		}.String()
		assert.True(t1, strings.Contains(s, "1989415450447679764"))
		assert.True(t1, strings.Contains(s, "2024-11-08T20:00:00Z"))
	})
}

func TestTweet_MarshalJSON(t *testing.T) {
	t.Run("empty media omitted", func(t *testing.T) {
		tw := Tweet{ID: "1", Text: "hello", Username: "someone"}

		data, err := jsoniter.Marshal(&tw)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "photos")
		assert.NotContains(t, string(data), "videos")
		assert.Contains(t, string(data), `"id":"1"`)
	})

	t.Run("query round trip", func(t *testing.T) {
		tw := Tweet{ID: "2", Query: "india"}

		data, err := jsoniter.Marshal(&tw)
		require.NoError(t, err)

		got := new(Tweet)
		require.NoError(t, jsoniter.Unmarshal(data, got))
		assert.Equal(t, "india", got.Query)
	})
}
