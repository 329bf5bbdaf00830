package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jhoicas/Tesoreria-api/internal/application/dto"
	"github.com/jhoicas/Tesoreria-api/internal/domain"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/Tesoreria-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUserRepo repositorio en memoria con la restricción única
// (company, username) del esquema real.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo(users ...*entity.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.CompanyID == u.CompanyID && existing.Username == u.Username {
			return domain.ErrDuplicateUsername
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByUsernameAndCompany(_ context.Context, username, companyID string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username && u.CompanyID == companyID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) ListByCompany(_ context.Context, companyID string, _ repository.UserFilter) ([]*entity.User, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, u := range r.users {
		if u.CompanyID == companyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, len(out), nil
}

func (r *memUserRepo) CountActiveAdmins(_ context.Context, companyID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, u := range r.users {
		if u.CompanyID == companyID && u.Role == entity.RoleAdmin && u.Status == entity.StatusActive {
			n++
		}
	}
	return n, nil
}

func (r *memUserRepo) CountActiveByCompany(_ context.Context, companyID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, u := range r.users {
		if u.CompanyID == companyID && u.Status == entity.StatusActive {
			n++
		}
	}
	return n, nil
}

func (r *memUserRepo) RegisterFailedAttempt(_ context.Context, id string, threshold int, lockUntil time.Time) (int, *time.Time, error) {
	return 0, nil, nil
}

func (r *memUserRepo) RegisterSuccessfulLogin(_ context.Context, id string, at time.Time) error {
	return nil
}

func adminUser(id, username string) *entity.User {
	now := time.Now().UTC()
	return &entity.User{
		ID:           id,
		CompanyID:    "DEMO-001",
		Username:     username,
		PasswordHash: "$2a$12$hashficticio",
		FullName:     "Admin " + username,
		Role:         entity.RoleAdmin,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateUserValidaciones(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo())
	ctx := context.Background()

	cases := []dto.CreateUserRequest{
		{},
		{Username: "cajero", FullName: "Cajero"},                                        // sin password
		{Username: "cajero", Password: "12345", FullName: "Cajero"},                     // password corta
		{Username: "cajero", Password: "secreto123"},                                    // sin nombre
		{Username: "cajero", Password: "secreto123", FullName: "Cajero", Role: "root"},  // rol inexistente
	}
	for _, in := range cases {
		_, err := uc.Create(ctx, "DEMO-001", in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestCreateUserRolPorDefecto(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo())

	out, err := uc.Create(context.Background(), "DEMO-001", dto.CreateUserRequest{
		Username: "cajero",
		Password: "secreto123",
		FullName: "Cajero Principal",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role)
	assert.Equal(t, entity.StatusActive, out.Status)
	assert.NotEmpty(t, out.ID)
}

func TestCreateUserUsernameDuplicado(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo(adminUser("a-1", "admin")))

	_, err := uc.Create(context.Background(), "DEMO-001", dto.CreateUserRequest{
		Username: "admin",
		Password: "secreto123",
		FullName: "Otro Admin",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestUpdateUserOtraCompany(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo(adminUser("a-1", "admin")))

	// Un admin de otra company no puede tocar usuarios ajenos.
	_, err := uc.Update(context.Background(), "OTRA-002", "a-1", dto.UpdateUserRequest{FullName: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateDegradarUltimoAdmin(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo(adminUser("a-1", "admin")))

	_, err := uc.Update(context.Background(), "DEMO-001", "a-1", dto.UpdateUserRequest{Role: entity.RoleUser})
	assert.ErrorIs(t, err, domain.ErrLastAdmin)
}

func TestUpdateDesactivarUltimoAdmin(t *testing.T) {
	// Desactivar o suspender al único admin activo abre la misma puerta que
	// degradarlo: la company quedaría sin administración.
	for _, status := range []string{entity.StatusInactive, entity.StatusSuspended} {
		repo := newMemUserRepo(adminUser("a-1", "admin"))
		uc := NewUserUseCase(repo)

		_, err := uc.Update(context.Background(), "DEMO-001", "a-1", dto.UpdateUserRequest{Status: status})
		assert.ErrorIs(t, err, domain.ErrLastAdmin, "status %q", status)

		n, _ := repo.CountActiveAdmins(context.Background(), "DEMO-001")
		assert.Equal(t, 1, n, "el admin debe seguir activo")
	}
}

func TestUpdateDesactivarAdminConOtroInactivo(t *testing.T) {
	// Un segundo admin ya inactivo no cuenta: sigue siendo el último activo.
	otro := adminUser("a-2", "admin2")
	otro.Status = entity.StatusInactive
	uc := NewUserUseCase(newMemUserRepo(adminUser("a-1", "admin"), otro))

	_, err := uc.Update(context.Background(), "DEMO-001", "a-1", dto.UpdateUserRequest{Status: entity.StatusInactive})
	assert.ErrorIs(t, err, domain.ErrLastAdmin)
}

func TestUpdateDegradarAdminConOtroActivo(t *testing.T) {
	repo := newMemUserRepo(adminUser("a-1", "admin"), adminUser("a-2", "admin2"))
	uc := NewUserUseCase(repo)

	out, err := uc.Update(context.Background(), "DEMO-001", "a-1", dto.UpdateUserRequest{Role: entity.RoleManager})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, out.Role)
}

func TestDeleteUltimoAdmin(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo(adminUser("a-1", "admin")))

	err := uc.Delete(context.Background(), "DEMO-001", "a-1")
	assert.ErrorIs(t, err, domain.ErrLastAdmin)
}

func TestDeleteAdminConOtroActivo(t *testing.T) {
	repo := newMemUserRepo(adminUser("a-1", "admin"), adminUser("a-2", "admin2"))
	uc := NewUserUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, "DEMO-001", "a-1"))
	u, _ := repo.GetByID(ctx, "a-1")
	assert.Nil(t, u)

	// El que queda ya no se puede borrar.
	err := uc.Delete(ctx, "DEMO-001", "a-2")
	assert.ErrorIs(t, err, domain.ErrLastAdmin)
}

func TestUpdateCamposVaciosNoTocan(t *testing.T) {
	repo := newMemUserRepo(adminUser("a-1", "admin"), adminUser("a-2", "admin2"))
	uc := NewUserUseCase(repo)

	out, err := uc.Update(context.Background(), "DEMO-001", "a-1", dto.UpdateUserRequest{Status: entity.StatusSuspended})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Equal(t, "Admin admin", out.FullName)
	assert.Equal(t, entity.StatusSuspended, out.Status)
}
