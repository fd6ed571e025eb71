package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const collectedTTL = time.Hour * 24

type collectedTweetsRepo interface {
	MarkCollected(ctx context.Context, id string) error
	IsCollected(ctx context.Context, id string) (bool, error)
}

func (d *db) MarkCollected(ctx context.Context, id string) error {
	return d.db.Set(ctx, string(d.keyBuilder.CollectedTweet(id)), 1, collectedTTL).Err()
}

func (d *db) IsCollected(ctx context.Context, id string) (bool, error) {
	if err := d.db.Get(ctx, string(d.keyBuilder.CollectedTweet(id))).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
