package session

import (
	"context"
	"net/url"

	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/entity"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/repository"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/pkg/logger"
)

// LoginRoute normaliza una ubicación hacia la ruta de login. Se descartan la
// query y el fragmento: un parámetro residual podría malinterpretarse como
// estado de error o de callback en la pantalla de login.
func LoginRoute(current *url.URL) *url.URL {
	clean := &url.URL{Path: "/login"}
	if current != nil {
		clean.Scheme = current.Scheme
		clean.Host = current.Host
	}
	return clean
}

// Logout cierra la sesión. Desde el punto de vista del llamador siempre tiene
// éxito: la notificación al backend es de mejor esfuerzo y cualquier fallo solo
// se registra.
type Logout struct {
	identity IdentityGateway
	store    repository.SessionStore
	nav      Navigator
	log      *logger.Logger
}

// NewLogout construye el caso de uso de cierre de sesión.
func NewLogout(identity IdentityGateway, store repository.SessionStore, nav Navigator, log *logger.Logger) *Logout {
	return &Logout{identity: identity, store: store, nav: nav, log: log}
}

// Run notifica el logout si hay credencial (ignorando errores), limpia todas las
// claves persistidas, restablece la sesión a sus valores por defecto y deja la
// navegación en la ruta de login sin parámetros residuales.
func (l *Logout) Run(ctx context.Context, s *entity.Session) {
	if s.Credential != "" {
		if err := l.identity.Logout(ctx, s.Credential); err != nil {
			l.log.Warn().Err(err).Msg("notificación de logout fallida, se continúa con la limpieza local")
		}
	}
	if err := l.store.Clear(ctx); err != nil {
		l.log.Warn().Err(err).Msg("no se pudo limpiar el caché de sesión durante el logout")
	}
	s.Reset()
	l.nav.ToLogin()
}
