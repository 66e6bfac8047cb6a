package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// AccountRepo defines the persistence operations for Accounts.
type AccountRepo interface {
	// Create inserts a new account. PasswordHash must already be hashed.
	// Returns domain.ErrConflict if the username is taken.
	Create(ctx context.Context, acct domain.Account) (domain.Account, error)

	// GetByUsername retrieves an account by its unique username.
	// Returns domain.ErrNotFound if no such account exists.
	GetByUsername(ctx context.Context, username string) (domain.Account, error)

	// TouchLastLogin stamps last_login for the account with the given id.
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}

type pgAccountRepo struct {
	db db
}

// NewAccountRepo constructs an AccountRepo backed by the provided db connection.
func NewAccountRepo(db db) AccountRepo {
	return &pgAccountRepo{db: db}
}

const accountColumns = `id, username, password, first_name, last_name, email,
	is_superuser, is_staff, is_active, last_login, date_joined`

func (r *pgAccountRepo) Create(ctx context.Context, acct domain.Account) (domain.Account, error) {
	const q = `
		INSERT INTO auth_user (username, password, first_name, last_name, email,
		                       is_superuser, is_staff, is_active)
		VALUES (@username, @password, @first_name, @last_name, @email,
		        @is_superuser, @is_staff, @is_active)
		RETURNING ` + accountColumns

	args := pgx.NamedArgs{
		"username":     acct.Username,
		"password":     acct.PasswordHash,
		"first_name":   acct.FirstName,
		"last_name":    acct.LastName,
		"email":        acct.Email,
		"is_superuser": acct.IsSuperuser,
		"is_staff":     acct.IsStaff,
		"is_active":    acct.IsActive,
	}

	result, err := scanAccount(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domain.Account{}, fmt.Errorf("repo.AccountRepo.Create: %w", domain.ErrConflict)
		}
		return domain.Account{}, fmt.Errorf("repo.AccountRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgAccountRepo) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	const q = `SELECT ` + accountColumns + ` FROM auth_user WHERE username = @username`

	result, err := scanAccount(r.db.QueryRow(ctx, q, pgx.NamedArgs{"username": username}))
	if err != nil {
		return domain.Account{}, fmt.Errorf("repo.AccountRepo.GetByUsername: %w", err)
	}
	return result, nil
}

func (r *pgAccountRepo) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	const q = `UPDATE auth_user SET last_login = @at WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "at": at})
	if err != nil {
		return fmt.Errorf("repo.AccountRepo.TouchLastLogin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.AccountRepo.TouchLastLogin: %w", domain.ErrNotFound)
	}
	return nil
}

func scanAccount(s scanner) (domain.Account, error) {
	var (
		a         domain.Account
		lastLogin pgtype.Timestamptz
	)

	err := s.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.FirstName, &a.LastName, &a.Email,
		&a.IsSuperuser, &a.IsStaff, &a.IsActive, &lastLogin, &a.DateJoined)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, domain.ErrNotFound
		}
		return domain.Account{}, err
	}

	if lastLogin.Valid {
		ll := lastLogin.Time
		a.LastLogin = &ll
	}
	return a, nil
}
