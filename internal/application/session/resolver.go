package session

import (
	"context"

	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/entity"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/pkg/logger"
)

// PortalResolver reconcilia la preferencia guardada del empleado con el acceso
// calculado por la política. La preferencia nunca amplía el acceso: solo puede
// elegir entre los portales que la política ya concede.
type PortalResolver struct {
	prefs PreferenceStore
	log   *logger.Logger
}

// NewPortalResolver construye el resolver de portal por defecto.
func NewPortalResolver(prefs PreferenceStore, log *logger.Logger) *PortalResolver {
	return &PortalResolver{prefs: prefs, log: log}
}

// ResolveDefaultPortal devuelve el portal de aterrizaje del empleado. Una sola
// consulta de preferencia, sin reintentos: si falla o no hay valor usable, gana
// el portal por defecto de la política. Una preferencia desconocida o fuera del
// conjunto de acceso se ignora por completo (no se recorta al valor más cercano).
func (r *PortalResolver) ResolveDefaultPortal(ctx context.Context, employeeID string, acc entity.Access) entity.Portal {
	pref, err := r.prefs.DefaultPortal(ctx, employeeID)
	if err != nil {
		// No fatal: la sesión sigue con el portal de la política.
		r.log.Warn().Err(err).Str("employee_id", employeeID).
			Msg("preferencia de portal no disponible, se usa el portal de la política")
		return acc.Default
	}
	if pref == "" {
		return acc.Default
	}
	if !entity.KnownPortal(pref) || !acc.Allows(pref) {
		r.log.Debug().Str("employee_id", employeeID).Str("preference", string(pref)).
			Msg("preferencia fuera del acceso vigente, ignorada")
		return acc.Default
	}
	return pref
}
