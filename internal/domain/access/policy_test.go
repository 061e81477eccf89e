package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/access"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Roles fijos: el cargo no debe influir
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_RolAdmin_AccesoCompleto(t *testing.T) {
	// El texto del cargo es irrelevante para los roles fijos.
	for _, position := range []string{"", "Janitor", "Regional Manager"} {
		acc := access.Resolve("admin", position)
		assert.Equal(t, entity.PortalAdmin, acc.Default, "el default de admin debe ser el portal admin")
		assert.ElementsMatch(t,
			[]entity.Portal{entity.PortalAdmin, entity.PortalFinance, entity.PortalSupervisor, entity.PortalStaff},
			acc.Portals, "admin debe tener los cuatro portales")
	}
}

func TestResolve_RolFinance_NivelFinanzas(t *testing.T) {
	acc := access.Resolve("finance", "CEO") // el cargo no aplica con rol fijo
	assert.Equal(t, entity.PortalFinance, acc.Default)
	assert.ElementsMatch(t, []entity.Portal{entity.PortalFinance, entity.PortalStaff}, acc.Portals)
}

func TestResolve_RolSupervisor_NivelSupervision(t *testing.T) {
	acc := access.Resolve("supervisor", "")
	assert.Equal(t, entity.PortalSupervisor, acc.Default)
	assert.ElementsMatch(t, []entity.Portal{entity.PortalSupervisor, entity.PortalStaff}, acc.Portals)
}

func TestResolve_RolInsensibleAMayusculasYEspacios(t *testing.T) {
	acc := access.Resolve("  ADMIN  ", "")
	assert.Equal(t, entity.PortalAdmin, acc.Default, "el rol se compara recortado y en minúsculas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rol employee o ausente: decide el cargo
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_CargoConPalabraClave(t *testing.T) {
	cases := []struct {
		name     string
		role     string
		position string
		def      entity.Portal
	}{
		{"ceo da nivel admin", "employee", "CEO Assistant", entity.PortalAdmin},
		{"admin en el cargo da nivel admin", "", "Office Administrator", entity.PortalAdmin},
		{"accounting da nivel finanzas", "employee", "Accounting Clerk", entity.PortalFinance},
		{"finance da nivel finanzas", "", "Finance Analyst", entity.PortalFinance},
		{"regional manager da nivel supervisión", "employee", "Regional Manager - West", entity.PortalSupervisor},
		{"director da nivel supervisión", "", "Program Director", entity.PortalSupervisor},
		{"manager da nivel supervisión", "employee", "House Manager", entity.PortalSupervisor},
		{"sin palabra clave cae a staff", "employee", "Field Staff", entity.PortalStaff},
		{"cargo vacío cae a staff", "", "", entity.PortalStaff},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			acc := access.Resolve(tc.role, tc.position)
			assert.Equal(t, tc.def, acc.Default)
			assert.True(t, acc.Allows(entity.PortalStaff), "todo conjunto de acceso incluye staff")
		})
	}
}

func TestResolve_GrupoDePalabrasClaveEnOrden(t *testing.T) {
	// "Finance Admin" contiene "admin" y "finance": gana el primer grupo (admin).
	acc := access.Resolve("employee", "Finance Admin")
	assert.Equal(t, entity.PortalAdmin, acc.Default, "el primer grupo de palabras clave que coincida gana")
}

func TestResolve_CargoInsensibleAMayusculas(t *testing.T) {
	acc := access.Resolve("employee", "REGIONAL MANAGER")
	assert.Equal(t, entity.PortalSupervisor, acc.Default)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rol no reconocido: staff sin mirar el cargo
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_RolNoReconocido_CaeAStaff(t *testing.T) {
	// Con un rol desconocido ni siquiera se inspecciona el cargo.
	acc := access.Resolve("superadmin", "CEO")
	assert.Equal(t, entity.PortalStaff, acc.Default)
	assert.Equal(t, []entity.Portal{entity.PortalStaff}, acc.Portals)
}
