package sink

import (
	"context"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch"
	"github.com/elastic/go-elasticsearch/esapi"
	jsoniter "github.com/json-iterator/go"

	"github.com/sentinelgraph/sentinel-scraper/internal/common"
	"github.com/sentinelgraph/sentinel-scraper/internal/log"
)

type elasticSink struct {
	es    *elasticsearch.Client
	index string

	log log.Logger
}

func (s *elasticSink) Write(ctx context.Context, _ string, tweets []common.TweetSnapshot) error {
	if len(tweets) == 0 {
		return nil
	}

	var body strings.Builder

	for _, tweet := range tweets {
		data, err := jsoniter.Marshal(&tweet)
		if err != nil {
			return err
		}

		body.WriteString(fmt.Sprintf("{\"index\":{\"_index\":\"%s\",\"_id\":\"%s\"}}\n", s.index, tweet.ID))
		body.Write(data)
		body.WriteString("\n")
	}

	req := esapi.BulkRequest{Body: strings.NewReader(body.String())}

	res, err := req.Do(ctx, s.es)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk indexing failed: %s", res.Status())
	}

	s.log.WithField("count", len(tweets)).Debug("batch indexed")

	return nil
}

// NewElastic bulk-indexes batches into a single index, keyed by tweet ID so
// re-collected tweets overwrite instead of duplicating.
func NewElastic(addresses []string, index string, logger log.Logger) (Sink, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: addresses})
	if err != nil {
		return nil, err
	}

	return &elasticSink{es: es, index: index, log: logger}, nil
}
