package entity

import "time"

// Session associates an issued token with a user and an expiry.
// Expiry is advisory: there is no background reaper, consumers must
// check ExpiresAt themselves.
type Session struct {
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
