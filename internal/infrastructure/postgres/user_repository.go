package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Tesoreria-api/internal/domain"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/Tesoreria-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, company_id, username, password_hash, full_name, role, status,
	last_login, failed_attempts, lock_until, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, company_id, username, password_hash, full_name, role, status,
			last_login, failed_attempts, lock_until, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.CompanyID, user.Username, user.PasswordHash, user.FullName, user.Role, user.Status,
		user.LastLogin, user.FailedAttempts, user.LockUntil, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "get user by id")
}

// GetByUsernameAndCompany obtiene un usuario por username dentro de la company.
func (r *UserRepo) GetByUsernameAndCompany(ctx context.Context, username, companyID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND company_id = $2`
	return r.scanOne(r.pool.QueryRow(ctx, query, username, companyID), "get user by username")
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.CompanyID, &u.Username, &u.PasswordHash, &u.FullName, &u.Role, &u.Status,
		&u.LastLogin, &u.FailedAttempts, &u.LockUntil, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// Update actualiza los campos de perfil de un usuario.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET full_name = $2, role = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.FullName, user.Role, user.Status, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ListByCompany lista usuarios por company con búsqueda, rol y paginación.
func (r *UserRepo) ListByCompany(ctx context.Context, companyID string, f repository.UserFilter) ([]*entity.User, int, error) {
	where := `WHERE company_id = $1
		AND ($2 = '' OR username ILIKE '%' || $2 || '%' OR full_name ILIKE '%' || $2 || '%')
		AND ($3 = '' OR role = $3)`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users `+where, companyID, f.Search, f.Role).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := `SELECT ` + userColumns + ` FROM users ` + where + `
		ORDER BY created_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.pool.Query(ctx, query, companyID, f.Search, f.Role, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.CompanyID, &u.Username, &u.PasswordHash, &u.FullName, &u.Role, &u.Status,
			&u.LastLogin, &u.FailedAttempts, &u.LockUntil, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, total, rows.Err()
}

// CountActiveAdmins cuenta administradores activos de la company (invariante
// de último admin: releído en cada verificación, nunca cacheado).
func (r *UserRepo) CountActiveAdmins(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE company_id = $1 AND role = 'admin' AND status = 'active'`,
		companyID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active admins: %w", err)
	}
	return count, nil
}

// CountActiveByCompany cuenta usuarios activos de la company.
func (r *UserRepo) CountActiveByCompany(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE company_id = $1 AND status = 'active'`,
		companyID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active users: %w", err)
	}
	return count, nil
}

// RegisterFailedAttempt incremento y posible bloqueo en un solo UPDATE:
// dos logins fallidos concurrentes no pueden perder un incremento porque el
// read-modify-write ocurre dentro del statement, serializado por la fila.
func (r *UserRepo) RegisterFailedAttempt(ctx context.Context, id string, threshold int, lockUntil time.Time) (int, *time.Time, error) {
	query := `
		UPDATE users
		SET failed_attempts = failed_attempts + 1,
		    lock_until = CASE WHEN failed_attempts + 1 >= $2 THEN $3 ELSE lock_until END,
		    updated_at = now()
		WHERE id = $1
		RETURNING failed_attempts, lock_until`
	var attempts int
	var lock *time.Time
	if err := r.pool.QueryRow(ctx, query, id, threshold, lockUntil).Scan(&attempts, &lock); err != nil {
		return 0, nil, fmt.Errorf("register failed attempt: %w", err)
	}
	return attempts, lock, nil
}

// RegisterSuccessfulLogin reinicia el contador, limpia el bloqueo y estampa last_login.
func (r *UserRepo) RegisterSuccessfulLogin(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE users
		SET failed_attempts = 0, lock_until = NULL, last_login = $2, updated_at = now()
		WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id, at); err != nil {
		return fmt.Errorf("register successful login: %w", err)
	}
	return nil
}
