package sink

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinelgraph/sentinel-scraper/internal/common"
	"github.com/sentinelgraph/sentinel-scraper/internal/log"
)

func Test_jsonSink_Write(t *testing.T) {
	t.Run("snapshot round trip", func(t *testing.T) {
		dir := t.TempDir()
		now := time.Date(2025, 11, 12, 10, 30, 0, 0, time.UTC)
		s := &jsonSink{dir: dir, now: func() time.Time { return now }, log: log.NewLogger(logrus.New())}

		tweets := []common.TweetSnapshot{
			{Tweet: &common.Tweet{ID: "1", Text: "hello", Query: "india"}, CheckedAt: now},
		}
		require.NoError(t, s.Write(context.Background(), "india", tweets))

		path := filepath.Join(dir, "india_20251112T103000Z.json")
		data, err := os.ReadFile(path)
		require.NoError(t, err)

		envelope := new(Envelope)
		require.NoError(t, jsoniter.Unmarshal(data, envelope))
		assert.Equal(t, "india", envelope.Query)
		assert.Equal(t, 1, envelope.Count)
		require.Len(t, envelope.Tweets, 1)
		assert.Equal(t, "hello", envelope.Tweets[0].Text)
	})

	t.Run("no leftover temp file", func(t *testing.T) {
		dir := t.TempDir()
		s := NewJSON(dir, log.NewLogger(logrus.New()))

		require.NoError(t, s.Write(context.Background(), "bjp", nil))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.NotContains(t, entries[0].Name(), ".tmp")
	})
}

func Test_sanitize(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{query: "india", want: "india"},
		{query: "conversation_id:123", want: "conversation_id_123"},
		{query: "#Bitcoin since:2024-01-01", want: "Bitcoin_since_2024_01_01"},
		{query: "***", want: "scrape"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize(tt.query))
		})
	}
}

func TestMulti(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	logger := log.NewLogger(logrus.New())

	s := Multi(NewJSON(dir1, logger), NewJSON(dir2, logger))
	require.NoError(t, s.Write(context.Background(), "india", nil))

	for _, dir := range []string{dir1, dir2} {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	}
}
