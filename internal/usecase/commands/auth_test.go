//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"carhive/internal/domain/user"
	reqdto "carhive/internal/handler/dto/request"
	"carhive/internal/infra"
	"carhive/internal/infra/db"
	"carhive/internal/pkg/jwt"
	"carhive/internal/pkg/password"
	"carhive/internal/usecase/commands"
	"carhive/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users     map[string]*queries.AuthorizedUserView // by email
	hashes    map[string]string
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:  make(map[string]*queries.AuthorizedUserView),
		hashes: make(map[string]string),
	}
}

func (s *fakeUserStore) addUser(t *testing.T, email, plaintext string, role string) uuid.UUID {
	t.Helper()
	hash, err := password.HashPassword(plaintext)
	require.NoError(t, err)
	id := uuid.New()
	s.users[email] = &queries.AuthorizedUserView{ID: id, Username: "tester", Email: email, Role: role}
	s.hashes[email] = hash
	return id
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	view, ok := s.users[email]
	if !ok {
		return nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return view, s.hashes[email], nil
}

func (s *fakeUserStore) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	if s.createErr != nil {
		return uuid.Nil, s.createErr
	}
	email := u.Email().Value()
	if _, exists := s.users[email]; exists {
		return uuid.Nil, infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
	}
	id := uuid.New()
	s.users[email] = &queries.AuthorizedUserView{ID: id, Username: u.Username(), Email: email, Role: u.Role().String()}
	s.hashes[email] = u.PasswordHash()
	return id, nil
}

// GetByID implements queries.UserQueries over the fake store.
func (s *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	for _, v := range s.users {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, queries.ErrUserNotFound
}

func newAuthCommands(store *fakeUserStore) (commands.AuthCommands, *jwt.Service) {
	jwtService := jwt.NewService("test-secret-key-for-tests-only", time.Hour)
	return commands.NewAuthCommands(store, store, store, jwtService, nil), jwtService
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		store := newFakeUserStore()
		userID := store.addUser(t, "customer@example.com", "password123", "customer")
		auth, jwtService := newAuthCommands(store)

		result, err := auth.Login(ctx, reqdto.LoginRequest{Email: "customer@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, userID, result.User.ID)

		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "customer", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		store := newFakeUserStore()
		store.addUser(t, "customer@example.com", "password123", "customer")
		auth, _ := newAuthCommands(store)

		_, err := auth.Login(ctx, reqdto.LoginRequest{Email: "customer@example.com", Password: "wrongpassword"})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown user fails the same way as a wrong password", func(t *testing.T) {
		store := newFakeUserStore()
		auth, _ := newAuthCommands(store)

		_, err := auth.Login(ctx, reqdto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("malformed email", func(t *testing.T) {
		store := newFakeUserStore()
		auth, _ := newAuthCommands(store)

		_, err := auth.Login(ctx, reqdto.LoginRequest{Email: "not-an-email", Password: "password123"})
		assert.ErrorIs(t, err, commands.ErrAuthenticationFailed)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	registerReq := func() reqdto.RegisterRequest {
		return reqdto.RegisterRequest{
			Username: "newuser",
			Email:    "newuser@example.com",
			Password: "password123",
		}
	}

	t.Run("creates a customer account", func(t *testing.T) {
		store := newFakeUserStore()
		auth, _ := newAuthCommands(store)

		view, err := auth.Register(ctx, registerReq())
		require.NoError(t, err)
		assert.Equal(t, "newuser@example.com", view.Email)
		assert.Equal(t, "customer", view.Role)

		// The stored hash is never the plaintext.
		_, hash, err := store.FindByEmail(ctx, "newuser@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, "password123", hash)
		assert.NoError(t, password.ComparePassword(hash, "password123"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		store := newFakeUserStore()
		store.addUser(t, "newuser@example.com", "password123", "customer")
		auth, _ := newAuthCommands(store)

		_, err := auth.Register(ctx, registerReq())
		assert.ErrorIs(t, err, commands.ErrEmailAlreadyTaken)
	})

	t.Run("invalid email", func(t *testing.T) {
		store := newFakeUserStore()
		auth, _ := newAuthCommands(store)

		req := registerReq()
		req.Email = "not-an-email"
		_, err := auth.Register(ctx, req)
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("storage failure", func(t *testing.T) {
		store := newFakeUserStore()
		store.createErr = infra.WrapRepoErr("insert failed", nil, infra.KindDBFailure)
		auth, _ := newAuthCommands(store)

		_, err := auth.Register(ctx, registerReq())
		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}
