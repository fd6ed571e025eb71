package envcheck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sentinelgraph/sentinel-scraper/internal/common"
)

type fakeStorage struct {
	err error
}

func (f *fakeStorage) Ping(context.Context) error { return f.err }

type fakeAccounts struct {
	accounts []common.TwitterAccount
	err      error
}

func (f *fakeAccounts) GetAccounts(context.Context) ([]common.TwitterAccount, error) {
	return f.accounts, f.err
}

type fakeManager struct {
	ready bool
}

func (f *fakeManager) Ready() bool { return f.ready }

func Test_checker_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("ready", func(t *testing.T) {
		c := NewChecker(
			&fakeStorage{},
			&fakeAccounts{accounts: []common.TwitterAccount{{Login: "acc1"}}},
			&fakeManager{ready: true},
		)

		report := c.Check(ctx)
		assert.True(t, report.Ready())
		assert.Equal(t, "environment ready for scraping", report.Message)
	})

	t.Run("storage down", func(t *testing.T) {
		c := NewChecker(&fakeStorage{err: errors.New("connection refused")}, &fakeAccounts{}, nil)

		report := c.Check(ctx)
		assert.False(t, report.Ready())
		assert.False(t, report.StorageReady)
		assert.Contains(t, report.Message, "storage unreachable")
	})

	t.Run("no accounts", func(t *testing.T) {
		c := NewChecker(&fakeStorage{}, &fakeAccounts{}, nil)

		report := c.Check(ctx)
		assert.True(t, report.StorageReady)
		assert.False(t, report.AccountsConfigured)
		assert.False(t, report.Ready())
	})

	t.Run("manager not initialized", func(t *testing.T) {
		c := NewChecker(
			&fakeStorage{},
			&fakeAccounts{accounts: []common.TwitterAccount{{Login: "acc1"}}},
			&fakeManager{ready: false},
		)

		report := c.Check(ctx)
		assert.False(t, report.Ready())
		assert.Equal(t, "scraper manager is not initialized", report.Message)
	})

	t.Run("nil manager means constructible", func(t *testing.T) {
		c := NewChecker(
			&fakeStorage{},
			&fakeAccounts{accounts: []common.TwitterAccount{{Login: "acc1"}}},
			nil,
		)

		assert.True(t, c.Check(ctx).Ready())
	})
}
