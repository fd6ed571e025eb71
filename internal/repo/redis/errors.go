package redis

import "errors"

var ErrCookieNotFound = errors.New("no cookie found")
