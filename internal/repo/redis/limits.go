package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type requestLimiter interface {
	AddCounter(ctx context.Context, id string, window time.Duration, counterTime time.Time) error
	CleanCounters(ctx context.Context, id string, window time.Duration) error
	GetCounters(ctx context.Context, id string, window time.Duration) (uint64, error)
	SetThreshold(ctx context.Context, id string, window time.Duration) error
	GetThreshold(ctx context.Context, id string, window time.Duration) (uint64, error)
	CheckIfExist(ctx context.Context, id string, window time.Duration) (bool, error)
	Create(ctx context.Context, id string, window time.Duration, threshold uint64) error
}

// Counters are sorted sets scored by unix time, so cleaning a window is a
// single ZRemRangeByScore and counting is a ZCard.
func (d *db) AddCounter(ctx context.Context, id string, window time.Duration, counterTime time.Time) error {
	key := string(d.keyBuilder.Requests(id, window))

	member := redis.Z{
		Score:  float64(counterTime.Unix()),
		Member: strconv.FormatInt(counterTime.UnixNano(), 10),
	}

	if err := d.db.ZAdd(ctx, key, member).Err(); err != nil {
		return err
	}

	return d.db.Expire(ctx, key, window*2).Err()
}

func (d *db) CleanCounters(ctx context.Context, id string, window time.Duration) error {
	edge := time.Now().Add(-window).Unix()

	return d.db.ZRemRangeByScore(
		ctx,
		string(d.keyBuilder.Requests(id, window)),
		"-inf",
		strconv.FormatInt(edge, 10),
	).Err()
}

func (d *db) GetCounters(ctx context.Context, id string, window time.Duration) (uint64, error) {
	count, err := d.db.ZCard(ctx, string(d.keyBuilder.Requests(id, window))).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, err
	}

	return uint64(count), nil
}

// SetThreshold pins the learned threshold to the number of requests observed
// in the window when the platform started rejecting.
func (d *db) SetThreshold(ctx context.Context, id string, window time.Duration) error {
	count, err := d.GetCounters(ctx, id, window)
	if err != nil {
		return err
	}

	if count == 0 {
		return nil
	}

	d.log.
		WithField("id", id).
		WithField("window", window).
		WithField("threshold", count).
		Debug("threshold learned")

	return d.db.Set(ctx, string(d.keyBuilder.RequestThreshold(id, window)), count, 0).Err()
}

func (d *db) GetThreshold(ctx context.Context, id string, window time.Duration) (uint64, error) {
	data, err := d.db.Get(ctx, string(d.keyBuilder.RequestThreshold(id, window))).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, err
	}

	return strconv.ParseUint(data, 10, 64)
}

func (d *db) CheckIfExist(ctx context.Context, id string, window time.Duration) (bool, error) {
	count, err := d.db.Exists(ctx, string(d.keyBuilder.RequestThreshold(id, window))).Result()
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (d *db) Create(ctx context.Context, id string, window time.Duration, threshold uint64) error {
	return d.db.SetNX(ctx, string(d.keyBuilder.RequestThreshold(id, window)), threshold, 0).Err()
}
