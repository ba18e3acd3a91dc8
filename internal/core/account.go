package core

import (
	"context"
	"errors"
	"fmt"
	"opms/internal/repository"
	"opms/internal/session"
	tokenIssuer "opms/pkg/jwt"
	"opms/pkg/password"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrValidation error = errors.New("validation failed")
var ErrDuplicateUsername error = errors.New("username already taken")
var ErrDuplicateEmail error = errors.New("email already registered")
var ErrInvalidCredentials error = errors.New("invalid username or password")
var ErrSessionNotFound error = errors.New("session not found")

// AccountService registers accounts, logs them in and out, and resolves sessions back to accounts.
type AccountService struct {
	logs         *zap.SugaredLogger
	repo         Repository
	sessions     SessionStore
	jwtIssuer    JWTIssuer
	hasher       PasswordHasher
	sessionTTL   time.Duration
	newSessionID func() string

	dummyHashOnce sync.Once
	dummyHash     string
}

// NewAccountService is a constructor function for the AccountService type.
func NewAccountService(logger *zap.SugaredLogger, repo Repository, sessions SessionStore, jwt JWTIssuer, hasher PasswordHasher, sessionTTL time.Duration) *AccountService {
	return &AccountService{
		logs:         logger,
		repo:         repo,
		sessions:     sessions,
		jwtIssuer:    jwt,
		hasher:       hasher,
		sessionTTL:   sessionTTL,
		newSessionID: uuid.NewString,
	}
}

// Register validates the registration form, enforces username and email uniqueness
// (username first) and persists the account with a bcrypt password hash.
func (s *AccountService) Register(ctx context.Context, msg RegisterMessage) (Account, error) {
	msg = normalizeRegistration(msg)

	if err := runChecks(registrationChecks(msg)...); err != nil {
		return Account{}, err
	}

	if err := s.ensureUnique(ctx, msg.Username, msg.Email); err != nil {
		return Account{}, err
	}

	hash, err := s.hasher.Hash(msg.Password)
	if err != nil {
		return Account{}, fmt.Errorf("hash password: %w", err)
	}

	account := repository.Account{
		Username:     msg.Username,
		Email:        msg.Email,
		PasswordHash: hash,
	}

	err = s.repo.CreateAccount(ctx, &account)
	if err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			// lost a race with a concurrent registration
			if uniqueErr := s.ensureUnique(ctx, msg.Username, msg.Email); uniqueErr != nil {
				return Account{}, uniqueErr
			}
		}
		return Account{}, fmt.Errorf("create account: %w", err)
	}

	s.logs.Infow("account registered", "account_id", account.ID, "username", account.Username)

	return toAccount(account), nil
}

// Authenticate verifies the credentials and opens a session bound to the account.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, msg AuthMessage) (Session, error) {
	msg.Username = strings.TrimSpace(msg.Username)

	if err := runChecks(loginChecks(msg)...); err != nil {
		return Session{}, err
	}

	// bcrypt only compares the first 72 bytes
	if len(msg.Password) > maxPasswordBytes {
		s.verifyDummy(msg.Password)
		return Session{}, ErrInvalidCredentials
	}

	account, err := s.repo.GetAccountByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			s.verifyDummy(msg.Password)
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("get account by username: %w", err)
	}

	if err = s.hasher.Verify(account.PasswordHash, msg.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("verify password: %w", err)
	}

	sessionID := s.newSessionID()
	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   account.Username,
		Subject:    strconv.FormatUint(uint64(account.ID), 10),
		SessionID:  sessionID,
		Expiration: s.sessionTTL,
	}
	token := s.jwtIssuer.Generate(tokenInfo)
	signed, err := s.jwtIssuer.Sign(token)
	if err != nil {
		return Session{}, fmt.Errorf("signing token: %w", err)
	}

	if err = s.sessions.Save(ctx, sessionID, account.ID); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}

	s.logs.Infow("account logged in", "account_id", account.ID)

	return Session{
		ID:        sessionID,
		AccountID: account.ID,
		Token:     signed,
		ExpiresAt: tokenIssuer.TimeNow().Add(s.sessionTTL),
	}, nil
}

// Logout destroys the session behind the token.
func (s *AccountService) Logout(ctx context.Context, token string) error {
	sessionID, _, err := s.parseToken(token)
	if err != nil {
		return err
	}

	if err = s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.logs.Infow("session destroyed", "session_id", sessionID)
	return nil
}

// LoadSessionAccount resolves a session token to the account it is bound to.
// Invalid, expired and revoked sessions yield ErrSessionNotFound.
func (s *AccountService) LoadSessionAccount(ctx context.Context, token string) (Account, error) {
	sessionID, subject, err := s.parseToken(token)
	if err != nil {
		return Account{}, err
	}

	accountID, err := s.sessions.AccountID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return Account{}, ErrSessionNotFound
		}
		return Account{}, fmt.Errorf("get session: %w", err)
	}

	if strconv.FormatUint(uint64(accountID), 10) != subject {
		s.logs.Warnw("session bound to a different account than its token", "session_id", sessionID)
		return Account{}, ErrSessionNotFound
	}

	account, err := s.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return Account{}, ErrSessionNotFound
		}
		return Account{}, fmt.Errorf("get account by id: %w", err)
	}

	return toAccount(account), nil
}

func (s *AccountService) ensureUnique(ctx context.Context, username, email string) error {
	_, err := s.repo.GetAccountByUsername(ctx, username)
	if err == nil {
		return ErrDuplicateUsername
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return fmt.Errorf("get account by username: %w", err)
	}

	_, err = s.repo.GetAccountByEmail(ctx, email)
	if err == nil {
		return ErrDuplicateEmail
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return fmt.Errorf("get account by email: %w", err)
	}

	return nil
}

// verifyDummy equalizes timing between unknown usernames and wrong passwords.
func (s *AccountService) verifyDummy(plain string) {
	s.dummyHashOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash(s.newSessionID())
	})
	if s.dummyHash != "" {
		_ = s.hasher.Verify(s.dummyHash, plain)
	}
}

func (s *AccountService) parseToken(token string) (sessionID, subject string, err error) {
	claims, err := s.jwtIssuer.Validate(token)
	if err != nil {
		return "", "", fmt.Errorf("validate session token: %w: %w", err, ErrSessionNotFound)
	}

	sessionID, _ = claims["sid"].(string)
	subject, _ = claims["sub"].(string)
	if sessionID == "" || subject == "" {
		return "", "", fmt.Errorf("session token without sid or sub: %w", ErrSessionNotFound)
	}

	return sessionID, subject, nil
}

func toAccount(account repository.Account) Account {
	return Account{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}
}
