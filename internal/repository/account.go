package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deppfellow/go-signup/internal/model"
	"github.com/deppfellow/go-signup/internal/sqlerr"
)

// DBTX is the subset of pgxpool.Pool, pgx.Conn and pgx.Tx the repository uses.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type AccountRepository struct {
	db DBTX
}

func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

const insertAccount = `
INSERT INTO accounts (id, name, email, password)
VALUES ($1, $2, $3, $4)
RETURNING id, name, email, password, created_at`

// Create inserts a new account. password must already be hashed.
func (r *AccountRepository) Create(ctx context.Context, id uuid.UUID, name, email, password string) (*model.Account, error) {
	var account model.Account

	err := r.db.QueryRow(ctx, insertAccount, id, name, email, password).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Password,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, sqlerr.Wrap("insert account", err)
	}

	return &account, nil
}

const selectAccountByEmail = `
SELECT id, name, email, password, created_at
FROM accounts
WHERE email = $1`

// GetByEmail returns the account registered under email. A missing row
// surfaces as pgx.ErrNoRows in the error chain.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	var account model.Account

	err := r.db.QueryRow(ctx, selectAccountByEmail, email).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Password,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, sqlerr.Wrap("select account by email", err)
	}

	return &account, nil
}
