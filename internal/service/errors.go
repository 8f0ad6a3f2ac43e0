package service

import "errors"

var (
	ErrContentNotConfigured = errors.New("content api is not configured")
)
