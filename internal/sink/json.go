package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/sentinelgraph/sentinel-scraper/internal/common"
	"github.com/sentinelgraph/sentinel-scraper/internal/log"
)

const (
	dirPerm       = 0o755
	filePerm      = 0o644
	stampFormat   = "20060102T150405Z"
	defaultPrefix = "scrape"
)

// Envelope is the snapshot file layout under data/raw/.
type Envelope struct {
	Timestamp time.Time              `json:"timestamp"`
	Query     string                 `json:"query,omitempty"`
	Count     int                    `json:"count"`
	Tweets    []common.TweetSnapshot `json:"tweets"`
}

type jsonSink struct {
	dir string

	now func() time.Time

	log log.Logger
}

func (s *jsonSink) Write(_ context.Context, query string, tweets []common.TweetSnapshot) error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return err
	}

	now := s.now().UTC()

	envelope := Envelope{
		Timestamp: now,
		Query:     query,
		Count:     len(tweets),
		Tweets:    tweets,
	}

	data, err := jsoniter.MarshalIndent(&envelope, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.json", sanitize(query), now.Format(stampFormat)))

	// Write through a temp file so readers never see a half-written snapshot.
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, data, filePerm); err != nil {
		return err
	}

	if err = os.Rename(tmp, path); err != nil {
		return err
	}

	s.log.WithField("path", path).WithField("count", len(tweets)).Debug("snapshot saved")

	return nil
}

func sanitize(query string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, query)

	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		return defaultPrefix
	}

	return cleaned
}

// NewJSON writes each batch as a timestamped JSON snapshot under dir.
func NewJSON(dir string, logger log.Logger) Sink {
	return &jsonSink{dir: dir, now: time.Now, log: logger}
}
