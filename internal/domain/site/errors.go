package site

import "errors"

var (
	ErrSiteNotConfigured = errors.New("site location has not been configured")
	ErrInvalidSiteConfig = errors.New("site location configuration is invalid")
)
