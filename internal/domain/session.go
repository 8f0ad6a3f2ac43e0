package domain

import "time"

// Session identifies the signed-in user of a request.
type Session struct {
	UserID    int64
	ExpiresAt time.Time
}
