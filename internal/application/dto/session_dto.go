package dto

import (
	"encoding/json"

	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/entity"
)

// Flag es el booleano tolerante del backend: puede llegar como bool, número,
// string o null. Se decodifica tal cual y se normaliza con entity.TruthyFlag en
// la frontera de ingesta; al serializar siempre sale como bool canónico.
type Flag struct {
	value any
}

// FlagOf construye un Flag ya normalizado (para payloads de salida).
func FlagOf(b bool) Flag {
	return Flag{value: b}
}

// Bool devuelve el valor normalizado del flag.
func (f Flag) Bool() bool {
	return entity.TruthyFlag(f.value)
}

// UnmarshalJSON acepta cualquier representación JSON del flag sin fallar.
func (f *Flag) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f.value = v
	return nil
}

// MarshalJSON serializa el valor ya normalizado.
func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Bool())
}

// EmployeeDTO es la representación de empleado en el API del backend. Los campos
// ajenos al arranque de sesión (dirección base, centros de costo) se transportan
// sin interpretarlos.
type EmployeeDTO struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name,omitempty"`
	Email                   string   `json:"email,omitempty"`
	Role                    string   `json:"role,omitempty"`
	Position                string   `json:"position,omitempty"`
	BaseAddress             string   `json:"baseAddress,omitempty"`
	CostCenters             []string `json:"costCenters,omitempty"`
	HasCompletedOnboarding  Flag     `json:"hasCompletedOnboarding"`
	HasCompletedSetupWizard Flag     `json:"hasCompletedSetupWizard"`
}

// ToEntity normaliza el DTO del backend hacia la entidad de dominio. Este es el
// único punto donde se aplica la coerción tri-estado de los flags.
func (d EmployeeDTO) ToEntity() *entity.Employee {
	return &entity.Employee{
		ID:                      d.ID,
		Name:                    d.Name,
		Email:                   d.Email,
		Role:                    d.Role,
		Position:                d.Position,
		BaseAddress:             d.BaseAddress,
		CostCenters:             d.CostCenters,
		HasCompletedOnboarding:  d.HasCompletedOnboarding.Bool(),
		HasCompletedSetupWizard: d.HasCompletedSetupWizard.Bool(),
	}
}

// EmployeeToDTO construye el payload completo para PUT /api/employees/{id} a
// partir de la entidad ya normalizada.
func EmployeeToDTO(e *entity.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:                      e.ID,
		Name:                    e.Name,
		Email:                   e.Email,
		Role:                    e.Role,
		Position:                e.Position,
		BaseAddress:             e.BaseAddress,
		CostCenters:             e.CostCenters,
		HasCompletedOnboarding:  FlagOf(e.HasCompletedOnboarding),
		HasCompletedSetupWizard: FlagOf(e.HasCompletedSetupWizard),
	}
}

// VerifyResponseDTO respuesta de GET /api/auth/verify.
type VerifyResponseDTO struct {
	Employee EmployeeDTO `json:"employee"`
}

// PreferenceDTO respuesta de GET /api/dashboard-preferences/{employeeId}.
// DefaultPortal puede venir vacío, desconocido o apuntar a un portal que el
// empleado ya no tiene permitido; el resolver decide qué hacer con él.
type PreferenceDTO struct {
	DefaultPortal string `json:"defaultPortal,omitempty"`
}
