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

var _ session.PreferenceStore = (*PreferenceStore)(nil)

// PreferenceStore adaptador HTTP de la preferencia de portal guardada.
type PreferenceStore struct {
	client *Client
}

// NewPreferenceStore construye el adaptador de preferencias.
func NewPreferenceStore(client *Client) *PreferenceStore {
	return &PreferenceStore{client: client}
}

// DefaultPortal consulta GET /api/dashboard-preferences/{employeeId}. Un fallo
// aquí nunca invalida la sesión: el resolver lo degrada al portal de la
// política. Un 200 sin valor devuelve cadena vacía sin error.
func (s *PreferenceStore) DefaultPortal(ctx context.Context, employeeID string) (entity.Portal, error) {
	var resp dto.PreferenceDTO
	status, err := s.client.do(ctx, http.MethodGet, "/api/dashboard-preferences/"+employeeID, "", nil, &resp)
	if err != nil {
		return "", err
	}
	if !is2xx(status) {
		return "", fmt.Errorf("%w (status %d)", domain.ErrPreferenceFetch, status)
	}
	return entity.Portal(resp.DefaultPortal), nil
}
