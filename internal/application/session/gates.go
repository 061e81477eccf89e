package session

import (
	"context"

	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/entity"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/pkg/logger"
)

// SetupWizardGate es el segundo gate del arranque: el asistente de configuración
// inicial. Solo se consulta cuando el onboarding ya quedó resuelto en falso
// dentro de la misma sesión.
type SetupWizardGate struct{}

// IsPending indica si el asistente sigue bloqueando. Un flag ausente significa
// no completado, es decir, el gate bloquea.
func (SetupWizardGate) IsPending(emp *entity.Employee) bool {
	return emp != nil && !emp.HasCompletedSetupWizard
}

// Complete marca el asistente como completado. Solo voltea el flag local: no hay
// re-verificación de red después.
func (SetupWizardGate) Complete(s *entity.Session) {
	if s.Employee == nil {
		return
	}
	s.Employee.HasCompletedSetupWizard = true
	s.SetupWizardPending = false
}

// OnboardingGate es el primer gate del arranque. Completarlo dispara una
// persistencia de mejor esfuerzo y encadena la evaluación del asistente.
type OnboardingGate struct {
	employees EmployeeService
	wizard    SetupWizardGate
	log       *logger.Logger
}

// NewOnboardingGate construye el gate de onboarding.
func NewOnboardingGate(employees EmployeeService, log *logger.Logger) *OnboardingGate {
	return &OnboardingGate{employees: employees, log: log}
}

// IsPending indica si el onboarding sigue bloqueando. Nunca es verdadero sin
// empleado cargado.
func (g *OnboardingGate) IsPending(emp *entity.Employee) bool {
	return emp != nil && !emp.HasCompletedOnboarding
}

// Complete marca el onboarding como completado: envía UNA llamada de
// persistencia con el payload completo del empleado (si falla se registra y no
// se reintenta), voltea el flag local de forma optimista pase lo que pase, y
// re-evalúa el asistente de configuración con el flag que ya tenemos en memoria,
// sin volver a consultar el registro al backend.
func (g *OnboardingGate) Complete(ctx context.Context, s *entity.Session) {
	if s.Employee == nil {
		return
	}
	updated := s.Employee.Clone()
	updated.HasCompletedOnboarding = true

	if err := g.employees.Update(ctx, s.Credential, updated); err != nil {
		g.log.Warn().Err(err).Str("employee_id", updated.ID).
			Msg("no se pudo persistir el onboarding, se conserva el avance local")
	}

	s.Employee = updated
	s.OnboardingPending = false
	s.SetupWizardPending = g.wizard.IsPending(s.Employee)
}
