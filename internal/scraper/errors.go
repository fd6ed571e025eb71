package scraper

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrNoAccounts = errors.New("no scraping accounts configured")
	ErrNotReady   = errors.New("scraper manager is not initialized")
)
