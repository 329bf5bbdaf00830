package auth

import (
	"context"
	"time"

	"github.com/jhoicas/Tesoreria-api/internal/application/dto"
	"github.com/jhoicas/Tesoreria-api/internal/domain"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/Tesoreria-api/internal/domain/repository"
	"github.com/jhoicas/Tesoreria-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Política de bloqueo por fuerza bruta: el bloqueo se activa cuando el
// contador ALCANZA maxFailedAttempts y dura lockWindow.
const (
	maxFailedAttempts = 5
	lockWindow        = 30 * time.Minute
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login con bloqueo por intentos
// fallidos y verificación de tokens.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, now: time.Now}
}

// WithClock reemplaza el reloj (tests de la ventana de bloqueo).
func (uc *AuthUseCase) WithClock(now func() time.Time) *AuthUseCase {
	uc.now = now
	return uc
}

// Login verifica credenciales dentro de la company y emite un JWT.
//
// Usuario inexistente, contraseña incorrecta y cuenta no activa responden
// todos ErrInvalidCredentials, para no permitir enumerar usuarios.
//
// Máquina de bloqueo: mientras now < lock_until todo intento responde
// ErrAccountLocked sin consumir intento. Un fallo incrementa el contador en
// un solo UPDATE atómico del repositorio; al alcanzar el umbral se fija el
// bloqueo. El contador NO se reinicia al expirar la ventana: tras el
// vencimiento, un único fallo adicional vuelve a bloquear de inmediato.
// Solo un login correcto reinicia el contador.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" || in.CompanyID == "" {
		return nil, domain.ErrValidation
	}

	user, err := uc.userRepo.GetByUsernameAndCompany(ctx, in.Username, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != entity.StatusActive {
		return nil, domain.ErrInvalidCredentials
	}

	now := uc.now()
	if user.IsLocked(now) {
		return nil, domain.ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		if _, _, err := uc.userRepo.RegisterFailedAttempt(ctx, user.ID, maxFailedAttempts, now.Add(lockWindow)); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidCredentials
	}

	if err := uc.userRepo.RegisterSuccessfulLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	lastLogin := now
	user.LastLogin = &lastLogin
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// VerifyToken valida firma y expiración del token y relee el usuario: si ya
// no existe o no está activo el token deja de valer aunque no haya expirado.
// No hay lista de revocación; el logout es una operación local del cliente.
func (uc *AuthUseCase) VerifyToken(ctx context.Context, token string) (*dto.UserResponse, error) {
	userID, _, _, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != entity.StatusActive {
		return nil, domain.ErrInvalidToken
	}
	return ToUserResponse(user), nil
}

// ToUserResponse convierte la entidad al DTO público (sin hash ni contadores).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		Status:    u.Status,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
