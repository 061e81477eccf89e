package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrCredentialMissing = errors.New("no hay credencial persistida")
	ErrCredentialInvalid = errors.New("credencial rechazada por el backend")
	ErrEmployeeMissing   = errors.New("la respuesta de verificación no incluye empleado")
	ErrPreferenceFetch   = errors.New("no se pudo obtener la preferencia de portal")
	ErrUnexpectedStatus  = errors.New("respuesta HTTP inesperada del backend")
)
