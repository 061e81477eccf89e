package repository

import "context"

// Claves del caché local de sesión. La fuente de verdad siempre es el backend
// (verify se repite en cada arranque); el snapshot del empleado es solo
// informativo.
const (
	KeyAuthToken        = "auth_token"
	KeyEmployeeID       = "employee_id"
	KeyEmployeeSnapshot = "employee_snapshot"
)

// SessionStore define el puerto del caché local clave/valor de la sesión (DIP).
// Get devuelve cadena vacía sin error cuando la clave no existe. El acceso
// concurrente desde otro proceso no está protegido.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
