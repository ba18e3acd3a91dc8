package middleware

import (
	"context"
	"opms/internal/core"
)

//go:generate go tool counterfeiter -generate

//counterfeiter:generate -o fake -fake-name SessionLoader . SessionLoader
type SessionLoader interface {
	LoadSessionAccount(ctx context.Context, token string) (core.Account, error)
}
