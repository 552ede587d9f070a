package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/botica-api/internal/application/dto"
	"github.com/jhoicas/botica-api/internal/domain"
	"github.com/jhoicas/botica-api/internal/domain/entity"
	"github.com/jhoicas/botica-api/pkg/jwt"
)

type memUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.byEmail[strings.ToLower(u.Email)] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[strings.ToLower(email)], nil
}

const secret = "secreto-de-prueba"

func newAuth() (*AuthUseCase, *memUserRepo) {
	repo := &memUserRepo{byEmail: map[string]*entity.User{}}
	uc := NewAuthUseCase(repo, JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "botica-api"})
	uc.cost = bcrypt.MinCost
	return uc, repo
}

func TestRegisterAndLogin(t *testing.T) {
	uc, repo := newAuth()
	ctx := context.Background()

	user, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: " Caja@Botica.co ", Password: "secreta1"})
	require.NoError(t, err)
	assert.Equal(t, "caja@botica.co", user.Email)
	assert.Equal(t, "caja@botica.co", user.Name)
	assert.Equal(t, entity.UserStatusActive, user.Status)
	assert.NotEqual(t, "secreta1", repo.byEmail["caja@botica.co"].PasswordHash)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "CAJA@botica.co", Password: "secreta1"})
	require.NoError(t, err)
	claims, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "caja@botica.co", claims.Email)
}

func TestRegister_Errors(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "no-es-email", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "secreta1"})
	require.NoError(t, err)
	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "A@B.co", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_Errors(t *testing.T) {
	uc, repo := newAuth()
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "nadie@b.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "secreta1"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.co", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.byEmail["a@b.co"].Status = entity.UserStatusInactive
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.co", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
