package server

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/types"
)

// memUserStore is an in-memory UserStore for service tests.
type memUserStore struct {
	users map[uuid.UUID]*db.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]*db.User)}
}

func (s *memUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *memUserStore) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	id := uuid.New()
	s.users[id] = &db.User{ID: id, Name: name, Email: email}
	return id, nil
}

func (s *memUserStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return s.users[userID], nil
}

func (s *memUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u := s.users[userID]
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

func testUserService(store UserStore) *UserService {
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10})
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	store := newMemUserStore()
	svc := testUserService(store)
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.Name)
	assert.True(t, user.PasswordSet)

	loggedIn, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	store := newMemUserStore()
	svc := testUserService(store)
	ctx := context.Background()

	req := &types.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "password123"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	store := newMemUserStore()
	svc := testUserService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc := testUserService(newMemUserStore())

	_, err := svc.Login(context.Background(), &types.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err, "unknown email and bad password are indistinguishable")
}

func TestUserService_UpdatePassword(t *testing.T) {
	store := newMemUserStore()
	svc := testUserService(store)
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "oldpassword"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePassword(ctx, user.ID, "oldpassword", "newpassword"))

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "oldpassword"})
	assert.Error(t, err, "old password no longer works")

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "newpassword"})
	assert.NoError(t, err)
}

func TestUserService_UpdatePassword_WrongCurrent(t *testing.T) {
	store := newMemUserStore()
	svc := testUserService(store)
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)

	err = svc.UpdatePassword(ctx, user.ID, "not-the-password", "newpassword")
	require.Error(t, err)
	assert.IsType(t, &ErrPasswordMismatch{}, err)
}

func TestUserService_UpdatePassword_UnknownUser(t *testing.T) {
	svc := testUserService(newMemUserStore())

	err := svc.UpdatePassword(context.Background(), uuid.New(), "a", "newpassword")
	require.Error(t, err)
	assert.IsType(t, &ErrUserNotFound{}, err)
}
