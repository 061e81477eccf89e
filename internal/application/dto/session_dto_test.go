package dto_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/application/dto"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/entity"
)

// decodeEmployee decodifica un JSON de empleado como lo enviaría el backend.
func decodeEmployee(t *testing.T, raw string) *entity.Employee {
	t.Helper()
	var d dto.EmployeeDTO
	require.NoError(t, json.Unmarshal([]byte(raw), &d), "el DTO debe tolerar el JSON del backend")
	return d.ToEntity()
}

// ──────────────────────────────────────────────────────────────────────────────
// Coerción tri-estado de los flags de onboarding
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeeDTO_FlagsVerdaderos(t *testing.T) {
	// true, 1 y "1" significan completado.
	for _, v := range []string{`true`, `1`, `"1"`} {
		raw := fmt.Sprintf(`{"id":"e1","hasCompletedOnboarding":%s,"hasCompletedSetupWizard":%s}`, v, v)
		emp := decodeEmployee(t, raw)
		assert.True(t, emp.HasCompletedOnboarding, "valor %s debe normalizar a completado", v)
		assert.True(t, emp.HasCompletedSetupWizard, "valor %s debe normalizar a completado", v)
	}
}

func TestEmployeeDTO_FlagsFalsos(t *testing.T) {
	// Cualquier otro valor (incluido ausente o nulo) significa NO completado,
	// es decir, el gate bloquea.
	for _, v := range []string{`false`, `0`, `"0"`, `null`, `"no"`, `"true"`} {
		raw := fmt.Sprintf(`{"id":"e1","hasCompletedOnboarding":%s}`, v)
		emp := decodeEmployee(t, raw)
		assert.False(t, emp.HasCompletedOnboarding, "valor %s debe normalizar a no completado", v)
	}

	emp := decodeEmployee(t, `{"id":"e1"}`)
	assert.False(t, emp.HasCompletedOnboarding, "flag ausente debe normalizar a no completado")
	assert.False(t, emp.HasCompletedSetupWizard)
}

func TestEmployeeDTO_CamposOpacosSeConservan(t *testing.T) {
	emp := decodeEmployee(t, `{
		"id": "e7",
		"name": "Gail Weisz",
		"email": "gweisz@oxford.example",
		"role": "employee",
		"position": "Field Staff",
		"baseAddress": "123 Main St, Durham NC",
		"costCenters": ["NC-DUR-1", "NC-DUR-2"],
		"hasCompletedOnboarding": 1
	}`)
	assert.Equal(t, "Gail Weisz", emp.Name)
	assert.Equal(t, "123 Main St, Durham NC", emp.BaseAddress)
	assert.Equal(t, []string{"NC-DUR-1", "NC-DUR-2"}, emp.CostCenters)
}

// ──────────────────────────────────────────────────────────────────────────────
// Serialización de salida: los flags salen como bool canónico
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeeToDTO_SerializaFlagsComoBool(t *testing.T) {
	emp := &entity.Employee{ID: "e1", HasCompletedOnboarding: true}
	raw, err := json.Marshal(dto.EmployeeToDTO(emp))
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"hasCompletedOnboarding":true`)
	assert.Contains(t, string(raw), `"hasCompletedSetupWizard":false`)
}
