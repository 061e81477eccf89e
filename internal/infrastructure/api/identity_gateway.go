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

var _ session.IdentityGateway = (*IdentityGateway)(nil)

// IdentityGateway adaptador HTTP del servicio de identidad del backend.
type IdentityGateway struct {
	client *Client
}

// NewIdentityGateway construye el adaptador de identidad.
func NewIdentityGateway(client *Client) *IdentityGateway {
	return &IdentityGateway{client: client}
}

// Verify valida el token contra GET /api/auth/verify. Cualquier respuesta no
// 2xx se trata de forma uniforme como credencial inválida.
func (g *IdentityGateway) Verify(ctx context.Context, token string) (*entity.Employee, error) {
	var resp dto.VerifyResponseDTO
	status, err := g.client.do(ctx, http.MethodGet, "/api/auth/verify", token, nil, &resp)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, fmt.Errorf("%w (status %d)", domain.ErrCredentialInvalid, status)
	}
	if resp.Employee.ID == "" {
		return nil, domain.ErrEmployeeMissing
	}
	return resp.Employee.ToEntity(), nil
}

// Logout notifica el cierre de sesión vía POST /api/auth/logout. La respuesta
// se ignora salvo para reportar el error al llamador, que a su vez la descarta.
func (g *IdentityGateway) Logout(ctx context.Context, token string) error {
	status, err := g.client.do(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil)
	if err != nil {
		return err
	}
	if !is2xx(status) {
		return fmt.Errorf("%w (status %d)", domain.ErrUnexpectedStatus, status)
	}
	return nil
}
