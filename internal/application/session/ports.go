package session

import (
	"context"

	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/entity"
)

// IdentityGateway define el puerto hacia el servicio de identidad del backend.
// La autorización real vive en el servidor; este cliente solo decide el ruteo de
// UX con lo que el servidor responde.
type IdentityGateway interface {
	// Verify valida el token bearer y devuelve el empleado ya normalizado.
	// Cualquier respuesta no exitosa (incluido fallo de red) es error.
	Verify(ctx context.Context, token string) (*entity.Employee, error)
	// Logout notifica el cierre de sesión. Mejor esfuerzo: el llamador ignora el error.
	Logout(ctx context.Context, token string) error
}

// PreferenceStore define el puerto de la preferencia de portal guardada por
// empleado. Puede devolver un valor obsoleto o fuera del acceso vigente.
type PreferenceStore interface {
	// DefaultPortal devuelve la preferencia guardada, o cadena vacía si no hay.
	DefaultPortal(ctx context.Context, employeeID string) (entity.Portal, error)
}

// EmployeeService define el puerto de actualización del registro de empleado
// (PUT con el payload completo). Solo lo usa el gate de onboarding y es de
// mejor esfuerzo.
type EmployeeService interface {
	Update(ctx context.Context, token string, emp *entity.Employee) error
}

// Navigator define el puerto hacia la capa de navegación de la UI. ToLogin debe
// dejar la ubicación en la ruta de login sin parámetros de query que puedan
// malinterpretarse como estado de error o de callback.
type Navigator interface {
	ToLogin()
}
