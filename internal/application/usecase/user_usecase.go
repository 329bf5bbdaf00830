package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Tesoreria-api/internal/application/auth"
	"github.com/jhoicas/Tesoreria-api/internal/application/dto"
	"github.com/jhoicas/Tesoreria-api/internal/domain"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/Tesoreria-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// UserUseCase administración de usuarios de una company (solo admin).
// Protege la invariante de "último administrador": ninguna operación puede
// dejar a la company sin un admin activo.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios de la company con búsqueda, filtro por rol y paginación.
func (uc *UserUseCase) List(ctx context.Context, companyID string, in dto.ListUsersRequest) (*dto.UserListResponse, error) {
	in.DefaultPage()
	list, total, err := uc.repo.ListByCompany(ctx, companyID, repository.UserFilter{
		Search: in.Search,
		Role:   in.Role,
		Limit:  in.Limit,
		Offset: in.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{
		Data: make([]dto.UserResponse, 0, len(list)),
		Page: dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}
	for _, u := range list {
		out.Data = append(out.Data, *auth.ToUserResponse(u))
	}
	return out, nil
}

// Create crea un usuario: valida entrada, hashea password con bcrypt y
// persiste. Devuelve ErrDuplicateUsername si el username ya existe en la company.
func (uc *UserUseCase) Create(ctx context.Context, companyID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" || in.FullName == "" {
		return nil, domain.ErrValidation
	}
	if len(in.Password) < 6 {
		return nil, domain.ErrValidation
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrValidation
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Username:     in.Username,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         role,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Update modifica nombre, rol o estado. Los campos vacíos no se tocan.
// Degradar o desactivar al último admin activo de la company se rechaza con
// ErrLastAdmin.
func (uc *UserUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.scopedUser(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Role != "" && !entity.ValidRole(in.Role) {
		return nil, domain.ErrValidation
	}
	if losesActiveAdmin(user, in) {
		if err := uc.ensureNotLastAdmin(ctx, companyID); err != nil {
			return nil, err
		}
	}
	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.Status != "" {
		user.Status = in.Status
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario. Borrar al último admin activo se rechaza con
// ErrLastAdmin. Los arqueos del usuario no se tocan: author_user_id es una
// referencia débil, solo para lookup.
func (uc *UserUseCase) Delete(ctx context.Context, companyID, id string) error {
	user, err := uc.scopedUser(ctx, companyID, id)
	if err != nil {
		return err
	}
	if user.Role == entity.RoleAdmin {
		if err := uc.ensureNotLastAdmin(ctx, companyID); err != nil {
			return err
		}
	}
	return uc.repo.Delete(ctx, user.ID)
}

// losesActiveAdmin indica si la actualización dejaría al usuario sin contar
// como admin activo: degradación de rol o cambio de estado a no activo.
func losesActiveAdmin(user *entity.User, in dto.UpdateUserRequest) bool {
	if user.Role != entity.RoleAdmin || user.Status != entity.StatusActive {
		return false
	}
	if in.Role != "" && in.Role != entity.RoleAdmin {
		return true
	}
	return in.Status != "" && in.Status != entity.StatusActive
}

// scopedUser carga el usuario verificando que pertenezca a la company del caller.
func (uc *UserUseCase) scopedUser(ctx context.Context, companyID, id string) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// ensureNotLastAdmin cuenta los admins activos de la company y rechaza la
// operación si queda uno o menos. El conteo y el write posterior no son una
// transacción: la cota dura la pone el recuento releído en cada llamada.
func (uc *UserUseCase) ensureNotLastAdmin(ctx context.Context, companyID string) error {
	count, err := uc.repo.CountActiveAdmins(ctx, companyID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return domain.ErrLastAdmin
	}
	return nil
}
