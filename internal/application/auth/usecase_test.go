package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/datanova-api/internal/application/auth"
	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/infrastructure/memory"
)

func newAuth() (*auth.AuthUseCase, *memory.UserRepo) {
	users := memory.NewUserRepository()
	uc := auth.NewAuthUseCase(users, memory.NewDenylist(), dto.NewValidator(), auth.JWTConfig{
		Secret: "test-secret", ExpMinutes: 60, Issuer: "datanova-test",
	})
	return uc, users
}

func TestRegister_OcultaPasswordYRolPorDefecto(t *testing.T) {
	uc, users := newAuth()
	ctx := context.Background()

	out, err := uc.Register(ctx, dto.RegisterRequest{Name: "Ana", Email: " Ana@X.io ", Tel: "555", Password: "secreto"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "ana@x.io", out.Email)
	assert.Equal(t, entity.RoleUser, out.Role)
	assert.False(t, out.CreatedAt.IsZero())

	stored, _ := users.GetByID(ctx, out.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto", stored.PasswordHash)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()
	_, err := uc.Register(ctx, dto.RegisterRequest{Name: "Ana", Email: "a@x.io", Password: "p"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Name: "Otra", Email: "A@x.io", Password: "p"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CamposRequeridos(t *testing.T) {
	uc, _ := newAuth()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@x.io", Password: "p"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()
	_, err := uc.Register(ctx, dto.RegisterRequest{Name: "Ana", Email: "a@x.io", Password: "secreto", Role: entity.RoleAdmin})
	require.NoError(t, err)

	res, err := uc.Login(ctx, dto.LoginRequest{Email: "a@x.io", Password: "secreto"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	claims, err := uc.Verify(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@x.io", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@x.io", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogout_RevocaElToken(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()
	_, err := uc.Register(ctx, dto.RegisterRequest{Name: "Ana", Email: "a@x.io", Password: "secreto"})
	require.NoError(t, err)
	res, err := uc.Login(ctx, dto.LoginRequest{Email: "a@x.io", Password: "secreto"})
	require.NoError(t, err)

	claims, err := uc.Verify(ctx, res.Token)
	require.NoError(t, err)
	require.NoError(t, uc.Logout(ctx, claims))

	_, err = uc.Verify(ctx, res.Token)
	assert.True(t, auth.IsAuthError(err))
}

func TestVerify_TokenInvalido(t *testing.T) {
	uc, _ := newAuth()
	_, err := uc.Verify(context.Background(), "no.es.jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
