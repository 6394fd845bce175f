package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository"
)

type stubUserRepo struct {
	byEmail map[string]domain.User
	nextID  uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: map[string]domain.User{}}
}

func (r *stubUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return domain.User{}, repository.ErrUserEmailExists
	}

	r.nextID++
	user.ID = r.nextID
	r.byEmail[user.Email] = user

	return user, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func TestAuthService_Signup(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)
	ctx := context.Background()

	created, err := svc.Signup(ctx, domain.User{
		Email:    "alice@example.com",
		Password: "s3cret",
		Name:     "Alice",
		Role:     domain.RoleTourist,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// The stored password must be a bcrypt hash, not the plaintext.
	stored := repo.byEmail["alice@example.com"]
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))

	_, err = svc.Signup(ctx, domain.User{
		Email:    "alice@example.com",
		Password: "other",
		Name:     "Alice Again",
		Role:     domain.RoleTourist,
	})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.User{
		Email:    "bob@example.com",
		Password: "hunter2",
		Name:     "Bob",
		Role:     domain.RoleSeller,
	})
	require.NoError(t, err)

	user, err := svc.Login(ctx, "bob@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Bob", user.Name)
	assert.Equal(t, domain.RoleSeller, user.Role)

	_, err = svc.Login(ctx, "bob@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(ctx, "nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
