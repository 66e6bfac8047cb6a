package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/pkordes/trip-planner/internal/auth"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// TokenIssuer mints and renews bearer credentials.
type TokenIssuer interface {
	IssuePair(userID int64, username string) (auth.Pair, error)
	Refresh(refreshToken string) (string, error)
}

// AccountService implements signup, login, and token renewal.
type AccountService struct {
	accounts repo.AccountRepo
	hasher   PasswordHasher
	tokens   TokenIssuer
	now      func() time.Time

	// dummyHash is verified against when the username is unknown so a miss
	// costs the same bcrypt work as a wrong password.
	dummyHash func() (string, error)
}

// NewAccountService constructs an AccountService.
func NewAccountService(accounts repo.AccountRepo, hasher PasswordHasher, tokens TokenIssuer) *AccountService {
	return &AccountService{
		accounts:  accounts,
		hasher:    hasher,
		tokens:    tokens,
		now:       time.Now,
		dummyHash: sync.OnceValues(func() (string, error) { return hasher.Hash("not-a-real-password") }),
	}
}

// Signup validates the payload, hashes the password, and stores the account.
// Returns a *domain.ValidationError (matching domain.ErrValidation) when a
// field is missing, too long, or the username is taken.
func (s *AccountService) Signup(ctx context.Context, in domain.Signup) (domain.Account, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)

	v := domain.NewValidationError()
	checkRequiredMax(v, "username", in.Username, domain.MaxUsernameLen)
	if in.Password == "" {
		v.Add("password", domain.MsgRequired)
	} else if len(in.Password) > auth.MaxPasswordBytes {
		v.Add("password", fmt.Sprintf("Ensure this field has no more than %d bytes.", auth.MaxPasswordBytes))
	}
	checkMax(v, "first_name", in.FirstName, domain.MaxNameLen)
	checkMax(v, "last_name", in.LastName, domain.MaxNameLen)
	checkMax(v, "email", in.Email, domain.MaxEmailLen)

	if _, ok := v.Fields["username"]; !ok {
		_, err := s.accounts.GetByUsername(ctx, in.Username)
		switch {
		case err == nil:
			v.Add("username", domain.MsgUsernameTaken)
		case !errors.Is(err, domain.ErrNotFound):
			return domain.Account{}, fmt.Errorf("service.AccountService.Signup: %w", err)
		}
	}
	if err := v.OrNil(); err != nil {
		return domain.Account{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("service.AccountService.Signup: %w", err)
	}

	created, err := s.accounts.Create(ctx, domain.Account{
		Username:     in.Username,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
	})
	if err != nil {
		// Lost a race with a concurrent signup for the same name.
		if errors.Is(err, domain.ErrConflict) {
			v.Add("username", domain.MsgUsernameTaken)
			return domain.Account{}, v
		}
		return domain.Account{}, fmt.Errorf("service.AccountService.Signup: %w", err)
	}
	return created, nil
}

// Login checks the password, stamps last_login, and issues a token pair.
// Unknown usernames and wrong passwords both return domain.ErrUnauthorized.
func (s *AccountService) Login(ctx context.Context, username, password string) (domain.Session, error) {
	acct, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			if hash, herr := s.dummyHash(); herr == nil {
				s.hasher.Verify(hash, password)
			}
			return domain.Session{}, fmt.Errorf("service.AccountService.Login: %w", domain.ErrUnauthorized)
		}
		return domain.Session{}, fmt.Errorf("service.AccountService.Login: %w", err)
	}
	if !s.hasher.Verify(acct.PasswordHash, password) {
		return domain.Session{}, fmt.Errorf("service.AccountService.Login: %w", domain.ErrUnauthorized)
	}

	if err := s.accounts.TouchLastLogin(ctx, acct.ID, s.now().UTC()); err != nil {
		return domain.Session{}, fmt.Errorf("service.AccountService.Login: %w", err)
	}

	pair, err := s.tokens.IssuePair(acct.ID, acct.Username)
	if err != nil {
		return domain.Session{}, fmt.Errorf("service.AccountService.Login: %w", err)
	}
	return domain.Session{
		Username:     acct.Username,
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AccountService) Refresh(_ context.Context, refreshToken string) (string, error) {
	access, err := s.tokens.Refresh(refreshToken)
	if err != nil {
		return "", fmt.Errorf("service.AccountService.Refresh: %w", err)
	}
	return access, nil
}

// checkRequiredMax records a required or too-long message for value.
func checkRequiredMax(v *domain.ValidationError, field, value string, limit int) {
	if value == "" {
		v.Add(field, domain.MsgRequired)
		return
	}
	checkMax(v, field, value, limit)
}

func checkMax(v *domain.ValidationError, field, value string, limit int) {
	if utf8.RuneCountInString(value) > limit {
		v.Add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", limit))
	}
}

// checkAccount records a field error when username does not name an account.
// Lookup failures other than not-found are returned.
func checkAccount(ctx context.Context, accounts repo.AccountRepo, v *domain.ValidationError, username string) error {
	if username == "" {
		v.Add("username", domain.MsgRequired)
		return nil
	}
	if _, err := accounts.GetByUsername(ctx, username); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			v.Add("username", invalidPK(username))
			return nil
		}
		return err
	}
	return nil
}

func invalidPK(pk any) string {
	return fmt.Sprintf("Invalid pk %q - object does not exist.", fmt.Sprint(pk))
}
