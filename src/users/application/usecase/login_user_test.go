package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezekielbrioso/Florish/src/users/application/request"
	"github.com/ezekielbrioso/Florish/src/users/domain/entity"
)

// fakeUserRepo guarda usuarios en un mapa por email
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Upsert(user *entity.User) (*entity.User, error) {
	if existing, ok := f.users[user.Email]; ok {
		existing.Name = user.Name
		existing.ImageURL = user.ImageURL
		existing.LastLogin = user.LastLogin
		return existing, nil
	}
	f.users[user.Email] = user
	return user, nil
}

func TestLoginUser_CreatesOnFirstLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewLoginUserUseCase(repo)

	user, err := uc.Execute(&request.LoginRequest{Email: "Ana@Example.com", Name: "Ana"})
	require.NoError(t, err)

	// El email se normaliza a minúsculas
	assert.Equal(t, "ana@example.com", user.Email)
	assert.False(t, user.IsAdmin)
	assert.Len(t, repo.users, 1)
}

func TestLoginUser_UpsertsByEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewLoginUserUseCase(repo)

	_, err := uc.Execute(&request.LoginRequest{Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, err)

	user, err := uc.Execute(&request.LoginRequest{Email: "ana@example.com", Name: "Ana María"})
	require.NoError(t, err)

	assert.Equal(t, "Ana María", user.Name)
	assert.Len(t, repo.users, 1)
}

func TestLoginUser_AdminFlagFromEnv(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@florish.com")

	repo := newFakeUserRepo()
	uc := NewLoginUserUseCase(repo)

	admin, err := uc.Execute(&request.LoginRequest{Email: "admin@florish.com", Name: "Admin"})
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)

	regular, err := uc.Execute(&request.LoginRequest{Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, err)
	assert.False(t, regular.IsAdmin)
}

func TestLoginUser_RejectsEmptyName(t *testing.T) {
	uc := NewLoginUserUseCase(newFakeUserRepo())

	_, err := uc.Execute(&request.LoginRequest{Email: "ana@example.com", Name: "  "})
	assert.ErrorIs(t, err, entity.ErrNameRequired)
}
