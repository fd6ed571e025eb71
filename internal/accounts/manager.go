package accounts

import (
	"context"
	"errors"
	"net/http"
	"os"

	jsoniter "github.com/json-iterator/go"
	twitterscraper "github.com/lueurxax/twitter-scraper"

	"github.com/sentinelgraph/sentinel-scraper/internal/common"
	"github.com/sentinelgraph/sentinel-scraper/internal/log"
	repo "github.com/sentinelgraph/sentinel-scraper/internal/repo/redis"
)

const loginKey = "login"

type Manager interface {
	AddAccount(ctx context.Context, config Config) error
	AuthScraper(ctx context.Context, account common.TwitterAccount, scraper *twitterscraper.Scraper) error
	Accounts(ctx context.Context) ([]common.TwitterAccount, error)
	SearchUnauthAccounts(ctx context.Context) ([]common.TwitterAccount, error)
}

type accountsRepo interface {
	SaveAccount(ctx context.Context, account common.TwitterAccount) error
	GetAccounts(ctx context.Context) ([]common.TwitterAccount, error)
	SaveCookie(ctx context.Context, login string, cookie []*http.Cookie) error
	GetCookie(ctx context.Context, login string) ([]*http.Cookie, error)
}

type manager struct {
	repo         accountsRepo
	authAccounts map[string]struct{}

	log log.Logger
}

func (m *manager) Accounts(ctx context.Context) ([]common.TwitterAccount, error) {
	return m.repo.GetAccounts(ctx)
}

func (m *manager) SearchUnauthAccounts(ctx context.Context) ([]common.TwitterAccount, error) {
	accounts, err := m.repo.GetAccounts(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]common.TwitterAccount, 0, len(accounts))

	for _, account := range accounts {
		if _, ok := m.authAccounts[account.Login]; !ok {
			res = append(res, account)
		}
	}

	return res, nil
}

// AuthScraper reuses stored cookies when they are still valid and falls back
// to a fresh login, saving refreshed cookies back to the repo.
func (m *manager) AuthScraper(ctx context.Context, account common.TwitterAccount, scraper *twitterscraper.Scraper) error {
	cookies, err := m.repo.GetCookie(ctx, account.Login)
	if err != nil {
		if !errors.Is(err, repo.ErrCookieNotFound) {
			m.log.WithError(err).WithField(loginKey, account.Login).Error("error while login")
			return err
		}

		if err = scraperLogin(ctx, scraper, account); err != nil {
			m.log.WithError(err).WithField(loginKey, account.Login).Error("error while login")
			return err
		}
	}

	scraper.SetCookies(cookies)

	if !scraper.IsLoggedIn(ctx) {
		if err = scraperLogin(ctx, scraper, account); err != nil {
			m.log.WithError(err).WithField(loginKey, account.Login).Error("error while login")
			return err
		}
	}

	cookies = scraper.GetCookies()

	if err = m.repo.SaveCookie(ctx, account.Login, cookies); err != nil {
		m.log.WithError(err).WithField(loginKey, account.Login).Error("error while login")
		return err
	}

	m.authAccounts[account.Login] = struct{}{}

	return nil
}

func (m *manager) AddAccount(ctx context.Context, config Config) error {
	account := common.TwitterAccount{
		Login:       config.Login,
		AccessToken: config.Password,
	}

	if config.Confirmation != "" {
		account.Confirmation = config.Confirmation
	}

	if err := m.repo.SaveAccount(ctx, account); err != nil {
		return err
	}

	if config.CookiesFilename == "" {
		return nil
	}

	data, err := os.ReadFile(config.CookiesFilename)
	if err != nil {
		return err
	}

	cookies := make([]*http.Cookie, 0)
	if err = jsoniter.Unmarshal(data, &cookies); err != nil {
		return err
	}

	return m.repo.SaveCookie(ctx, config.Login, cookies)
}

func scraperLogin(ctx context.Context, scraper *twitterscraper.Scraper, account common.TwitterAccount) error {
	if account.Confirmation == "" {
		return scraper.Login(ctx, account.Login, account.AccessToken)
	}

	return scraper.Login(ctx, account.Login, account.AccessToken, account.Confirmation)
}

func NewManager(repo accountsRepo, logger log.Logger) Manager {
	return &manager{repo: repo, authAccounts: make(map[string]struct{}), log: logger}
}
