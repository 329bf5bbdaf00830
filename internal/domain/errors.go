package domain

import "errors"

// Errores de dominio (sin dependencias externas). El transporte los mapea a
// códigos HTTP; los mensajes hacia el cliente no incluyen detalle interno.
var (
	ErrValidation         = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
	ErrAccountLocked      = errors.New("cuenta bloqueada temporalmente por intentos fallidos")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrLastAdmin          = errors.New("no se puede eliminar ni degradar al último administrador")
	ErrDuplicateUsername  = errors.New("el nombre de usuario ya existe en esta empresa")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)
