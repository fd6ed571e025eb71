package envcheck

import (
	"context"

	"github.com/sentinelgraph/sentinel-scraper/internal/common"
)

type storage interface {
	Ping(ctx context.Context) error
}

type accountsRepo interface {
	GetAccounts(ctx context.Context) ([]common.TwitterAccount, error)
}

type scraperManager interface {
	Ready() bool
}

// Report describes whether the system is ready to scrape.
type Report struct {
	StorageReady       bool   `json:"storage_ready"`
	AccountsConfigured bool   `json:"accounts_configured"`
	ScraperReady       bool   `json:"scraper_ready"`
	Message            string `json:"message"`
}

func (r Report) Ready() bool {
	return r.StorageReady && r.AccountsConfigured && r.ScraperReady
}

type Checker interface {
	Check(ctx context.Context) Report
}

type checker struct {
	storage  storage
	accounts accountsRepo
	scraper  scraperManager
}

func (c *checker) Check(ctx context.Context) Report {
	report := Report{}

	if err := c.storage.Ping(ctx); err != nil {
		report.Message = "storage unreachable: " + err.Error()
		return report
	}

	report.StorageReady = true

	accounts, err := c.accounts.GetAccounts(ctx)
	if err != nil {
		report.Message = "cannot list scraping accounts: " + err.Error()
		return report
	}

	if len(accounts) == 0 {
		report.Message = "no scraping accounts configured, add one with add_account"
		return report
	}

	report.AccountsConfigured = true

	// Without a live manager readiness means the manager is constructible
	// from the stored accounts.
	if c.scraper != nil {
		report.ScraperReady = c.scraper.Ready()
	} else {
		report.ScraperReady = true
	}

	if report.ScraperReady {
		report.Message = "environment ready for scraping"
	} else {
		report.Message = "scraper manager is not initialized"
	}

	return report
}

// NewChecker builds a readiness checker. The scraper manager is optional:
// pass nil when probing outside a running service.
func NewChecker(storage storage, accounts accountsRepo, scraper scraperManager) Checker {
	return &checker{storage: storage, accounts: accounts, scraper: scraper}
}
