package entity

import "strings"

// Roles reconocidos para Employee. Cualquier otro valor se trata como no reconocido
// y cae al portal de staff.
const (
	RoleAdmin      = "admin"
	RoleFinance    = "finance"
	RoleSupervisor = "supervisor"
	RoleEmployee   = "employee"
)

// Portales funcionales de la aplicación. No hay jerarquía implícita de privilegios:
// los conjuntos de acceso son explícitos por rol, nunca derivados de un orden.
type Portal string

const (
	PortalAdmin      Portal = "admin"
	PortalFinance    Portal = "finance"
	PortalSupervisor Portal = "supervisor"
	PortalStaff      Portal = "staff"
)

// KnownPortal indica si el valor corresponde a uno de los cuatro portales conocidos.
func KnownPortal(p Portal) bool {
	switch p {
	case PortalAdmin, PortalFinance, PortalSupervisor, PortalStaff:
		return true
	}
	return false
}

// Access es el resultado de la política de acceso: los portales permitidos y el
// portal por defecto derivado del rol/cargo. Portals nunca está vacío y siempre
// incluye PortalStaff.
type Access struct {
	Portals []Portal
	Default Portal
}

// Allows indica si el portal pertenece al conjunto permitido.
func (a Access) Allows(p Portal) bool {
	for _, candidate := range a.Portals {
		if candidate == p {
			return true
		}
	}
	return false
}

// Employee representa al empleado autenticado, ya normalizado en la frontera de
// ingesta (los flags tri-estado del backend llegan aquí como bool).
type Employee struct {
	ID          string
	Name        string
	Email       string
	Role        string // admin, finance, supervisor, employee o vacío
	Position    string // cargo en texto libre; solo se consulta si Role es employee o vacío
	BaseAddress string
	CostCenters []string

	// Flags de los gates de arranque. false significa que el gate bloquea.
	HasCompletedOnboarding  bool
	HasCompletedSetupWizard bool
}

// Clone devuelve una copia independiente del empleado (los gates mutan copias,
// nunca el registro compartido de la sesión).
func (e *Employee) Clone() *Employee {
	if e == nil {
		return nil
	}
	copia := *e
	if e.CostCenters != nil {
		copia.CostCenters = append([]string(nil), e.CostCenters...)
	}
	return &copia
}

// NormalizeRole prepara un rol para comparación: sin espacios y en minúsculas.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// TruthyFlag normaliza el booleano tolerante que envía el backend para los flags
// de onboarding: true, 1 y "1" son verdaderos; todo lo demás (false, 0, "0",
// "no", nulo o ausente) es falso. Se aplica UNA sola vez, al decodificar la
// respuesta del backend; el resto del código trabaja con bool.
func TruthyFlag(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64: // los números JSON decodifican como float64
		return t == 1
	case int:
		return t == 1
	case int64:
		return t == 1
	case string:
		return t == "1"
	default:
		return false
	}
}
