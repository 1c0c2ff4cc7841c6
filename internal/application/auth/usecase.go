package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
	"github.com/jhoicas/datanova-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y
// verificación de tokens.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	denylist  repository.TokenDenylist
	validator *dto.Validator
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, denylist repository.TokenDenylist, v *dto.Validator, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, denylist: denylist, validator: v, jwtCfg: jwtCfg}
}

// NormalizeEmail el email se compara sin espacios y en minúsculas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashPassword bcrypt con costo por defecto.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Register crea un usuario. Email ya registrado => ErrEmailAlreadyExists.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	email := NormalizeEmail(in.Email)
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Tel:          in.Tel,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// Login verifica email/password y emite un JWT. Email desconocido y password
// incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User:      dto.NewUserResponse(user),
	}, nil
}

// Verify valida firma, expiración y que el token no haya sido revocado.
func (uc *AuthUseCase) Verify(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	revoked, err := uc.denylist.IsRevoked(ctx, claims.TokenID())
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("%w: token revocado", domain.ErrUnauthorized)
	}
	return claims, nil
}

// Logout revoca el token hasta su expiración.
func (uc *AuthUseCase) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil {
		return domain.ErrUnauthorized
	}
	if err := uc.denylist.Revoke(ctx, claims.TokenID(), claims.ExpiresAtTime()); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// IsAuthError indica si err debe responderse como 401.
func IsAuthError(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}
