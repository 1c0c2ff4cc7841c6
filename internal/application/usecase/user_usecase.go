package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/datanova-api/internal/application/auth"
	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios. El alta vive en auth.
type UserUseCase struct {
	repo      repository.UserRepository
	validator *dto.Validator
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, v *dto.Validator) *UserUseCase {
	return &UserUseCase{repo: repo, validator: v}
}

func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.NewUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewUserResponse(u)
	return &out, nil
}

// Update el propio usuario o un ADMIN. Cambiar el rol exige ADMIN; un password
// nuevo se vuelve a hashear.
func (uc *UserUseCase) Update(ctx context.Context, actor domain.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	u, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(domain.ResourceUser, domain.ActionUpdate, u.ID, actor); err != nil {
		return nil, err
	}
	if in.Role != nil && *in.Role != u.Role {
		if !actor.IsAdmin() {
			return nil, fmt.Errorf("%w: solo un ADMIN puede cambiar el rol", domain.ErrForbidden)
		}
		u.Role = *in.Role
	}
	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Tel != nil {
		u.Tel = *in.Tel
	}
	if in.Email != nil {
		email := auth.NormalizeEmail(*in.Email)
		if email != u.Email {
			other, err := uc.repo.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, domain.ErrEmailAlreadyExists
			}
			u.Email = email
		}
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	out := dto.NewUserResponse(u)
	return &out, nil
}

// Delete el propio usuario o un ADMIN. Sus workflows quedan huérfanos.
func (uc *UserUseCase) Delete(ctx context.Context, actor domain.Actor, id string) error {
	u, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.Authorize(domain.ResourceUser, domain.ActionDelete, u.ID, actor); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *UserUseCase) load(ctx context.Context, id string) (*entity.User, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUserNotFound, id)
	}
	return u, nil
}
