package core

import "time"

type RegisterMessage struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

type AuthMessage struct {
	Username string
	Password string
}

// Account is the public view of a stored account. It never carries the password hash.
type Account struct {
	ID        uint
	Username  string
	Email     string
	CreatedAt time.Time
}

// Session is an authenticated login. Token is the signed value handed to the browser.
type Session struct {
	ID        string
	AccountID uint
	Token     string
	ExpiresAt time.Time
}
