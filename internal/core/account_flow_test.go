package core_test

import (
	"context"
	"opms/internal/core"
	"opms/internal/core/fake"
	"opms/internal/repository"
	"opms/internal/session"
	tokenIssuer "opms/pkg/jwt"
	"opms/pkg/password"
	"strings"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// memoryBackend wires the fakes to maps so the service can be exercised end to end.
type memoryBackend struct {
	mu       sync.Mutex
	accounts map[uint]repository.Account
	sessions map[string]uint
	nextID   uint
}

func newMemoryBackend(repo *fake.Repository, store *fake.SessionStore) *memoryBackend {
	m := &memoryBackend{
		accounts: map[uint]repository.Account{},
		sessions: map[string]uint{},
	}

	repo.CreateAccountStub = func(_ context.Context, acc *repository.Account) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		for _, existing := range m.accounts {
			if existing.Username == acc.Username || existing.Email == acc.Email {
				return repository.ErrAccountExists
			}
		}
		m.nextID++
		acc.ID = m.nextID
		acc.CreatedAt = time.Now()
		m.accounts[acc.ID] = *acc
		return nil
	}
	repo.GetAccountByUsernameStub = func(_ context.Context, username string) (repository.Account, error) {
		return m.find(func(a repository.Account) bool { return a.Username == username })
	}
	repo.GetAccountByEmailStub = func(_ context.Context, email string) (repository.Account, error) {
		return m.find(func(a repository.Account) bool { return a.Email == email })
	}
	repo.GetAccountByIDStub = func(_ context.Context, id uint) (repository.Account, error) {
		return m.find(func(a repository.Account) bool { return a.ID == id })
	}

	store.SaveStub = func(_ context.Context, sessionID string, accountID uint) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.sessions[sessionID] = accountID
		return nil
	}
	store.AccountIDStub = func(_ context.Context, sessionID string) (uint, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		id, ok := m.sessions[sessionID]
		if !ok {
			return 0, session.ErrSessionNotFound
		}
		return id, nil
	}
	store.DeleteStub = func(_ context.Context, sessionID string) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.sessions, sessionID)
		return nil
	}

	return m
}

func (m *memoryBackend) find(match func(repository.Account) bool) (repository.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if match(a) {
			return a, nil
		}
	}
	return repository.Account{}, repository.ErrAccountNotFound
}

func (m *memoryBackend) accountCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.accounts)
}

var _ = Describe("Account lifecycle", func() {
	var (
		backend *memoryBackend
		service *core.AccountService
		ctx     context.Context
	)

	BeforeEach(func() {
		fakeRepo := new(fake.Repository)
		fakeSessions := new(fake.SessionStore)
		backend = newMemoryBackend(fakeRepo, fakeSessions)
		ctx = context.Background()

		service = core.NewAccountService(
			zap.NewNop().Sugar(),
			fakeRepo,
			fakeSessions,
			tokenIssuer.NewJWTService([]byte("lifecycle-secret")),
			password.NewHasher(bcrypt.MinCost),
			time.Hour)
	})

	register := func(username, email, pw, confirm string) (core.Account, error) {
		return service.Register(ctx, core.RegisterMessage{
			Username:        username,
			Email:           email,
			Password:        pw,
			ConfirmPassword: confirm,
		})
	}

	It("should walk an account from registration to logout", func() {
		alice, err := register("alice", "a@x.com", "pw1", "pw1")
		Expect(err).NotTo(HaveOccurred())

		_, err = register("alice", "b@x.com", "pw2", "pw2")
		Expect(err).To(MatchError(core.ErrDuplicateUsername))
		Expect(backend.accountCount()).To(Equal(1))

		_, err = register("bob", "a@x.com", "pw2", "pw2")
		Expect(err).To(MatchError(core.ErrDuplicateEmail))
		Expect(backend.accountCount()).To(Equal(1))

		sess, err := service.Authenticate(ctx, core.AuthMessage{Username: "alice", Password: "pw1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(sess.AccountID).To(Equal(alice.ID))

		loaded, err := service.LoadSessionAccount(ctx, sess.Token)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.ID).To(Equal(alice.ID))
		Expect(loaded.Username).To(Equal("alice"))

		_, err = service.Authenticate(ctx, core.AuthMessage{Username: "alice", Password: "wrong"})
		Expect(err).To(MatchError(core.ErrInvalidCredentials))

		Expect(service.Logout(ctx, sess.Token)).To(Succeed())

		_, err = service.LoadSessionAccount(ctx, sess.Token)
		Expect(err).To(MatchError(core.ErrSessionNotFound))
	})

	It("should not reveal whether the username exists", func() {
		_, err := register("alice", "a@x.com", "pw1", "pw1")
		Expect(err).NotTo(HaveOccurred())

		_, unknownErr := service.Authenticate(ctx, core.AuthMessage{Username: "mallory", Password: "pw1"})
		_, wrongErr := service.Authenticate(ctx, core.AuthMessage{Username: "alice", Password: "nope"})

		Expect(unknownErr).To(MatchError(core.ErrInvalidCredentials))
		Expect(wrongErr).To(MatchError(core.ErrInvalidCredentials))
		Expect(unknownErr.Error()).To(Equal(wrongErr.Error()))
	})

	It("should not let a suffix past bcrypt's limit log in", func() {
		longPassword := strings.Repeat("a", 72)
		_, err := register("alice", "a@x.com", longPassword, longPassword)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Authenticate(ctx, core.AuthMessage{Username: "alice", Password: longPassword + "WRONG-SUFFIX"})
		Expect(err).To(MatchError(core.ErrInvalidCredentials))

		_, err = service.Authenticate(ctx, core.AuthMessage{Username: "alice", Password: longPassword})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should keep sessions independent", func() {
		_, err := register("alice", "a@x.com", "pw1", "pw1")
		Expect(err).NotTo(HaveOccurred())

		first, err := service.Authenticate(ctx, core.AuthMessage{Username: "alice", Password: "pw1"})
		Expect(err).NotTo(HaveOccurred())
		second, err := service.Authenticate(ctx, core.AuthMessage{Username: "alice", Password: "pw1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(first.ID).NotTo(Equal(second.ID))

		Expect(service.Logout(ctx, first.Token)).To(Succeed())

		_, err = service.LoadSessionAccount(ctx, first.Token)
		Expect(err).To(MatchError(core.ErrSessionNotFound))
		_, err = service.LoadSessionAccount(ctx, second.Token)
		Expect(err).NotTo(HaveOccurred())
	})
})
