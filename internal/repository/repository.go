package repository

import (
	"context"
	"errors"
	"fmt"
	"opms/internal/db"
)

var ErrAccountNotFound error = errors.New("account not found")
var ErrAccountExists error = errors.New("account already exists")

type AccountRepository struct {
	db Storage
}

func NewAccountRepository(db Storage) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

func (r *AccountRepository) Migrate() error {
	err := r.db.MigrateModels(&Account{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *AccountRepository) CreateAccount(ctx context.Context, account *Account) error {
	err := r.db.Create(ctx, account)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return ErrAccountExists
		}
		return fmt.Errorf("create account: %w", err)
	}

	return nil
}

func (r *AccountRepository) GetAccountByUsername(ctx context.Context, username string) (Account, error) {
	return r.getAccountBy(ctx, "username", username)
}

func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (Account, error) {
	return r.getAccountBy(ctx, "email", email)
}

func (r *AccountRepository) GetAccountByID(ctx context.Context, id uint) (Account, error) {
	return r.getAccountBy(ctx, "id", id)
}

func (r *AccountRepository) getAccountBy(ctx context.Context, column string, value any) (Account, error) {
	var account Account

	err := r.db.GetOneBy(ctx, column, value, &account)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("get account by %s: %w", column, err)
	}

	return account, nil
}
