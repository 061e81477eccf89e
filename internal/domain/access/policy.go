// Package access contiene la política de acceso a portales (servicio de dominio
// puro): mapea (rol, cargo) al conjunto de portales permitidos y su portal por
// defecto, sin tocar red ni estado.
package access

import (
	"strings"

	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/entity"
)

// rule es una regla de la política: si matches es verdadero, el empleado recibe
// exactamente estos portales y este portal por defecto. Las reglas se evalúan en
// orden y gana la primera coincidencia.
type rule struct {
	matches func(role, position string) bool
	portals []entity.Portal
	def     entity.Portal
}

// Niveles de acceso fijos. Cada conjunto incluye siempre staff.
var (
	adminTier      = []entity.Portal{entity.PortalAdmin, entity.PortalFinance, entity.PortalSupervisor, entity.PortalStaff}
	financeTier    = []entity.Portal{entity.PortalFinance, entity.PortalStaff}
	supervisorTier = []entity.Portal{entity.PortalSupervisor, entity.PortalStaff}
	staffTier      = []entity.Portal{entity.PortalStaff}
)

// rules ordena la política completa. El cargo en texto libre solo participa
// cuando el rol es employee o viene vacío; un rol no reconocido cae directo al
// nivel de staff sin inspeccionar el cargo.
var rules = []rule{
	{matches: roleIs(entity.RoleAdmin), portals: adminTier, def: entity.PortalAdmin},
	{matches: roleIs(entity.RoleFinance), portals: financeTier, def: entity.PortalFinance},
	{matches: roleIs(entity.RoleSupervisor), portals: supervisorTier, def: entity.PortalSupervisor},
	{matches: plainRoleWithKeyword("admin", "ceo"), portals: adminTier, def: entity.PortalAdmin},
	{matches: plainRoleWithKeyword("finance", "accounting"), portals: financeTier, def: entity.PortalFinance},
	{matches: plainRoleWithKeyword("supervisor", "director", "regional manager", "manager"), portals: supervisorTier, def: entity.PortalSupervisor},
}

// Resolve aplica la política sobre el rol y el cargo del empleado. Rol y cargo se
// comparan recortados y en minúsculas. Si ninguna regla coincide, el resultado es
// el nivel de staff.
func Resolve(role, position string) entity.Access {
	normRole := entity.NormalizeRole(role)
	normPosition := strings.ToLower(position)
	for _, r := range rules {
		if r.matches(normRole, normPosition) {
			return entity.Access{Portals: r.portals, Default: r.def}
		}
	}
	return entity.Access{Portals: staffTier, Default: entity.PortalStaff}
}

// roleIs construye el predicado de igualdad exacta de rol.
func roleIs(role string) func(string, string) bool {
	return func(r, _ string) bool { return r == role }
}

// plainRoleWithKeyword coincide cuando el rol es employee (o está ausente) y el
// cargo contiene alguna de las palabras clave, verificadas en orden.
func plainRoleWithKeyword(keywords ...string) func(string, string) bool {
	return func(role, position string) bool {
		if role != entity.RoleEmployee && role != "" {
			return false
		}
		for _, kw := range keywords {
			if strings.Contains(position, kw) {
				return true
			}
		}
		return false
	}
}
