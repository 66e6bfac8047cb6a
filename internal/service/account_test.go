package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pkordes/trip-planner/internal/auth"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

// memAccounts is a tiny in-memory AccountRepo for signup → login flows.
func memAccounts() (*mockAccountRepo, map[string]domain.Account) {
	store := map[string]domain.Account{}
	m := &mockAccountRepo{
		create: func(_ context.Context, a domain.Account) (domain.Account, error) {
			if _, ok := store[a.Username]; ok {
				return domain.Account{}, domain.ErrConflict
			}
			a.ID = int64(len(store) + 1)
			a.DateJoined = time.Now()
			store[a.Username] = a
			return a, nil
		},
		getByUsername: func(_ context.Context, username string) (domain.Account, error) {
			a, ok := store[username]
			if !ok {
				return domain.Account{}, domain.ErrNotFound
			}
			return a, nil
		},
		touchLastLogin: func(_ context.Context, id int64, at time.Time) error {
			for k, a := range store {
				if a.ID == id {
					a.LastLogin = &at
					store[k] = a
					return nil
				}
			}
			return domain.ErrNotFound
		},
	}
	return m, store
}

func newAccountService(accounts *mockAccountRepo) (*service.AccountService, *auth.Issuer) {
	issuer := auth.NewIssuer("test-secret", 5*time.Minute, 24*time.Hour)
	return service.NewAccountService(accounts, auth.NewPasswordHasher(bcrypt.MinCost), issuer), issuer
}

func fieldErrors(t *testing.T, err error) map[string][]string {
	t.Helper()
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "expected *domain.ValidationError, got %v", err)
	return ve.Fields
}

// ---- Signup ----------------------------------------------------------------

func TestAccountService_Signup_HashesPassword(t *testing.T) {
	accounts, store := memAccounts()
	svc, _ := newAccountService(accounts)

	_, err := svc.Signup(context.Background(), domain.Signup{Username: "minji", Password: "s3cret!"})

	require.NoError(t, err)
	stored := store["minji"]
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "s3cret!", stored.PasswordHash, "plaintext must never be stored")
}

func TestAccountService_SignupThenLogin(t *testing.T) {
	accounts, store := memAccounts()
	svc, issuer := newAccountService(accounts)
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.Signup{Username: "minji", Password: "s3cret!"})
	require.NoError(t, err)

	sess, err := svc.Login(ctx, "minji", "s3cret!")

	require.NoError(t, err)
	assert.Equal(t, "minji", sess.Username)
	_, err = issuer.Parse(sess.AccessToken, auth.AccessToken)
	assert.NoError(t, err)
	_, err = issuer.Parse(sess.RefreshToken, auth.RefreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, store["minji"].LastLogin, "login should stamp last_login")
}

func TestAccountService_Signup_MissingFields(t *testing.T) {
	accounts, _ := memAccounts()
	svc, _ := newAccountService(accounts)

	_, err := svc.Signup(context.Background(), domain.Signup{Username: "   "})

	require.ErrorIs(t, err, domain.ErrValidation)
	fields := fieldErrors(t, err)
	assert.Equal(t, []string{domain.MsgRequired}, fields["username"])
	assert.Equal(t, []string{domain.MsgRequired}, fields["password"])
}

func TestAccountService_Signup_TooLong(t *testing.T) {
	accounts, _ := memAccounts()
	svc, _ := newAccountService(accounts)

	_, err := svc.Signup(context.Background(), domain.Signup{
		Username:  strings.Repeat("a", domain.MaxUsernameLen+1),
		Password:  strings.Repeat("p", auth.MaxPasswordBytes+1),
		FirstName: strings.Repeat("f", domain.MaxNameLen+1),
	})

	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "first_name")
}

func TestAccountService_Signup_DuplicateUsername(t *testing.T) {
	accounts, _ := memAccounts()
	svc, _ := newAccountService(accounts)
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.Signup{Username: "minji", Password: "a"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, domain.Signup{Username: "minji", Password: "b"})

	assert.Equal(t, []string{domain.MsgUsernameTaken}, fieldErrors(t, err)["username"])
}

func TestAccountService_Signup_ConflictOnInsert(t *testing.T) {
	accounts := &mockAccountRepo{
		getByUsername: func(context.Context, string) (domain.Account, error) {
			return domain.Account{}, domain.ErrNotFound
		},
		create: func(context.Context, domain.Account) (domain.Account, error) {
			return domain.Account{}, domain.ErrConflict
		},
	}
	svc, _ := newAccountService(accounts)

	_, err := svc.Signup(context.Background(), domain.Signup{Username: "race", Password: "x"})

	assert.Equal(t, []string{domain.MsgUsernameTaken}, fieldErrors(t, err)["username"])
}

func TestAccountService_Signup_RepoError(t *testing.T) {
	boom := errors.New("db down")
	accounts := &mockAccountRepo{
		getByUsername: func(context.Context, string) (domain.Account, error) { return domain.Account{}, boom },
	}
	svc, _ := newAccountService(accounts)

	_, err := svc.Signup(context.Background(), domain.Signup{Username: "x", Password: "y"})

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

// ---- Login -----------------------------------------------------------------

func TestAccountService_Login_WrongPassword(t *testing.T) {
	accounts, store := memAccounts()
	svc, _ := newAccountService(accounts)
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.Signup{Username: "minji", Password: "right"})
	require.NoError(t, err)

	sess, err := svc.Login(ctx, "minji", "wrong")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, sess.AccessToken)
	assert.Nil(t, store["minji"].LastLogin)
}

func TestAccountService_Login_UnknownUser(t *testing.T) {
	accounts, _ := memAccounts()
	svc, _ := newAccountService(accounts)

	_, err := svc.Login(context.Background(), "ghost", "whatever")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// countingHasher records Verify calls on top of a real bcrypt hasher.
type countingHasher struct {
	*auth.PasswordHasher
	verified []string
}

func (h *countingHasher) Verify(hash, plain string) bool {
	h.verified = append(h.verified, hash)
	return h.PasswordHasher.Verify(hash, plain)
}

func TestAccountService_Login_UnknownUserStillVerifies(t *testing.T) {
	accounts, _ := memAccounts()
	hasher := &countingHasher{PasswordHasher: auth.NewPasswordHasher(bcrypt.MinCost)}
	svc := service.NewAccountService(accounts, hasher, auth.NewIssuer("test-secret", time.Minute, time.Hour))

	_, err := svc.Login(context.Background(), "ghost", "whatever")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = svc.Login(context.Background(), "ghost2", "whatever")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	require.Len(t, hasher.verified, 2)
	assert.NotEmpty(t, hasher.verified[0])
	assert.Equal(t, hasher.verified[0], hasher.verified[1], "the same stand-in hash is reused")
}

func TestAccountService_Login_RepoError(t *testing.T) {
	boom := errors.New("db down")
	accounts := &mockAccountRepo{
		getByUsername: func(context.Context, string) (domain.Account, error) { return domain.Account{}, boom },
	}
	svc, _ := newAccountService(accounts)

	_, err := svc.Login(context.Background(), "minji", "pw")

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

// ---- Refresh ---------------------------------------------------------------

func TestAccountService_Refresh(t *testing.T) {
	accounts, _ := memAccounts()
	svc, issuer := newAccountService(accounts)
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.Signup{Username: "minji", Password: "pw"})
	require.NoError(t, err)
	sess, err := svc.Login(ctx, "minji", "pw")
	require.NoError(t, err)

	access, err := svc.Refresh(ctx, sess.RefreshToken)

	require.NoError(t, err)
	claims, err := issuer.Parse(access, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "minji", claims.Subject)
}

func TestAccountService_Refresh_Garbage(t *testing.T) {
	accounts, _ := memAccounts()
	svc, _ := newAccountService(accounts)

	_, err := svc.Refresh(context.Background(), "not.a.jwt")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
