package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/application/dto"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/application/session"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/entity"
)

var _ session.EmployeeService = (*EmployeeService)(nil)

// EmployeeService adaptador HTTP de actualización del registro de empleado.
type EmployeeService struct {
	client *Client
}

// NewEmployeeService construye el adaptador de empleados.
func NewEmployeeService(client *Client) *EmployeeService {
	return &EmployeeService{client: client}
}

// Update envía PUT /api/employees/{id} con el payload completo del empleado.
// La corrección del flujo no depende de esta respuesta: el gate de onboarding
// voltea su flag local aunque esta llamada falle.
func (s *EmployeeService) Update(ctx context.Context, token string, emp *entity.Employee) error {
	payload := dto.EmployeeToDTO(emp)
	status, err := s.client.do(ctx, http.MethodPut, "/api/employees/"+emp.ID, token, payload, nil)
	if err != nil {
		return err
	}
	if !is2xx(status) {
		return fmt.Errorf("%w (status %d)", domain.ErrUnexpectedStatus, status)
	}
	return nil
}
