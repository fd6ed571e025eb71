package redis

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"github.com/sentinelgraph/sentinel-scraper/internal/common"
)

type twitterAccountsRepo interface {
	SaveAccount(ctx context.Context, account common.TwitterAccount) error
	GetAccounts(ctx context.Context) ([]common.TwitterAccount, error)
	SaveCookie(ctx context.Context, login string, cookie []*http.Cookie) error
	GetCookie(ctx context.Context, login string) ([]*http.Cookie, error)
}

func (d *db) GetAccounts(ctx context.Context) ([]common.TwitterAccount, error) {
	var cursor uint64

	accounts := make([]common.TwitterAccount, 0)

	for {
		var (
			keys []string
			err  error
		)

		keys, cursor, err = d.db.Scan(ctx, cursor, string(d.keyBuilder.Accounts())+"*", 0).Result()
		if err != nil {
			return nil, err
		}

		for _, key := range keys {
			account := common.TwitterAccount{}

			data, err := d.db.Get(ctx, key).Result()
			if err != nil {
				return nil, err
			}

			if err = jsoniter.UnmarshalFromString(data, &account); err != nil {
				return nil, err
			}

			accounts = append(accounts, account)
		}

		if cursor == 0 {
			break
		}
	}

	return accounts, nil
}

func (d *db) SaveAccount(ctx context.Context, account common.TwitterAccount) error {
	data, err := jsoniter.MarshalToString(&account)
	if err != nil {
		return err
	}

	return d.db.Set(ctx, string(d.keyBuilder.Account(account.Login)), data, 0).Err()
}

func (d *db) SaveCookie(ctx context.Context, login string, cookie []*http.Cookie) error {
	data, err := jsoniter.MarshalToString(&cookie)
	if err != nil {
		return err
	}

	return d.db.Set(ctx, string(d.keyBuilder.Cookie(login)), data, 0).Err()
}

func (d *db) GetCookie(ctx context.Context, login string) ([]*http.Cookie, error) {
	data, err := d.db.Get(ctx, string(d.keyBuilder.Cookie(login))).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCookieNotFound
		}

		return nil, err
	}

	cookie := make([]*http.Cookie, 0)

	if err = jsoniter.UnmarshalFromString(data, &cookie); err != nil {
		return nil, err
	}

	return cookie, nil
}
