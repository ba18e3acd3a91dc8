package core

import (
	"context"
	"opms/internal/repository"
	tokenIssuer "opms/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go tool counterfeiter -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateAccount(ctx context.Context, account *repository.Account) error
	GetAccountByUsername(ctx context.Context, username string) (repository.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (repository.Account, error)
	GetAccountByID(ctx context.Context, id uint) (repository.Account, error)
}

//counterfeiter:generate -o fake -fake-name SessionStore . SessionStore
type SessionStore interface {
	Save(ctx context.Context, sessionID string, accountID uint) error
	AccountID(ctx context.Context, sessionID string) (uint, error)
	Delete(ctx context.Context, sessionID string) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name PasswordHasher . PasswordHasher
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}
