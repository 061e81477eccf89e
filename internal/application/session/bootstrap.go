// Package session implementa el núcleo del arranque de sesión del cliente:
// la máquina de estados de bootstrap, la resolución del portal por defecto,
// los gates de onboarding y el cierre de sesión.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/application/dto"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/access"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/entity"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/repository"
	pkgjwt "github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/pkg/jwt"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/pkg/logger"
)

// State es el estado de la máquina de arranque.
type State string

const (
	// StateLoading estado inicial: se lee la credencial persistida.
	StateLoading State = "loading"
	// StateAuthenticating hay credencial: se verifica contra el backend, una sola vez.
	StateAuthenticating State = "authenticating"
	// StateAuthenticated estado terminal de éxito: la sesión queda lista para la UI.
	StateAuthenticated State = "authenticated"
	// StateLoggedOut estado terminal sin sesión: la UI muestra el login.
	StateLoggedOut State = "logged_out"
)

// stepResult es el resultado de un paso del arranque: el siguiente estado y el
// error que lo motivó (si lo hubo). Los errores de paso nunca abortan el
// proceso; a lo sumo fuerzan StateLoggedOut.
type stepResult struct {
	next State
	err  error
}

// Bootstrap orquesta el arranque de sesión. El pipeline es estrictamente
// secuencial: verificación, política de acceso, resolución de portal y gates,
// en ese orden, sin reintentos y sin pasos concurrentes entre sí.
type Bootstrap struct {
	identity   IdentityGateway
	store      repository.SessionStore
	resolver   *PortalResolver
	onboarding *OnboardingGate
	wizard     SetupWizardGate
	log        *logger.Logger

	state   State
	session *entity.Session
}

// NewBootstrap construye la máquina de arranque.
func NewBootstrap(identity IdentityGateway, store repository.SessionStore, resolver *PortalResolver, onboarding *OnboardingGate, log *logger.Logger) *Bootstrap {
	return &Bootstrap{
		identity:   identity,
		store:      store,
		resolver:   resolver,
		onboarding: onboarding,
		log:        log,
		state:      StateLoading,
		session:    entity.NewSession(),
	}
}

// State devuelve el estado actual de la máquina.
func (b *Bootstrap) State() State {
	return b.state
}

// Run ejecuta el arranque completo y devuelve la sesión resultante. Nunca
// devuelve error: el peor caso es una sesión en StateLoggedOut con el caché
// local limpio.
func (b *Bootstrap) Run(ctx context.Context) *entity.Session {
	// Tabla de transición: cada estado no terminal tiene exactamente un paso.
	steps := map[State]func(context.Context) stepResult{
		StateLoading:        b.loadCredential,
		StateAuthenticating: b.authenticate,
	}

	b.state = StateLoading
	for {
		step, ok := steps[b.state]
		if !ok {
			break // estado terminal
		}
		res := step(ctx)
		if res.err != nil {
			b.log.Warn().Err(res.err).Str("state", string(b.state)).
				Str("next", string(res.next)).Msg("paso de arranque con fallo")
		}
		b.state = res.next
	}

	b.session.Loading = false
	b.log.Info().Str("state", string(b.state)).Str("portal", string(b.session.Portal)).
		Bool("onboarding_pending", b.session.OnboardingPending).
		Bool("setup_wizard_pending", b.session.SetupWizardPending).
		Msg("arranque de sesión finalizado")
	return b.session
}

// loadCredential lee la credencial persistida. Sin credencial no hay nada que
// verificar: la corrida termina en LoggedOut.
func (b *Bootstrap) loadCredential(ctx context.Context) stepResult {
	token, err := b.store.Get(ctx, repository.KeyAuthToken)
	if err != nil {
		return stepResult{next: StateLoggedOut, err: fmt.Errorf("leer credencial del caché: %w", err)}
	}
	if token == "" {
		return stepResult{next: StateLoggedOut, err: domain.ErrCredentialMissing}
	}
	b.session.Credential = token
	return stepResult{next: StateAuthenticating}
}

// authenticate verifica la credencial exactamente una vez. Un rechazo (o fallo
// de red) invalida la sesión: se limpia todo el caché persistido sin intentar
// recuperación parcial. Con éxito se calculan gates y portal, y se guarda el
// snapshot informativo del empleado.
func (b *Bootstrap) authenticate(ctx context.Context) stepResult {
	if claims, err := pkgjwt.Inspect(b.session.Credential); err == nil {
		b.log.Debug().Str("employee_id", claims.EmployeeID).Str("role", claims.Role).
			Msg("credencial persistida encontrada, verificando contra el backend")
	}

	emp, err := b.identity.Verify(ctx, b.session.Credential)
	if err != nil {
		if clearErr := b.store.Clear(ctx); clearErr != nil {
			b.log.Warn().Err(clearErr).Msg("no se pudo limpiar el caché de sesión")
		}
		b.session.Credential = ""
		return stepResult{next: StateLoggedOut, err: fmt.Errorf("verificar credencial: %w", err)}
	}

	b.session.Employee = emp

	// Gates secuenciales: el asistente solo se evalúa con el onboarding resuelto.
	b.session.OnboardingPending = b.onboarding.IsPending(emp)
	if !b.session.OnboardingPending {
		b.session.SetupWizardPending = b.wizard.IsPending(emp)
	}

	acc := access.Resolve(emp.Role, emp.Position)
	b.session.Portal = b.resolver.ResolveDefaultPortal(ctx, emp.ID, acc)

	b.cacheSnapshot(ctx, emp)
	return stepResult{next: StateAuthenticated}
}

// cacheSnapshot guarda el ID y una copia desnormalizada del empleado en el caché
// local. Es informativo: el arranque siguiente vuelve a derivar todo de verify,
// así que un fallo aquí solo se registra.
func (b *Bootstrap) cacheSnapshot(ctx context.Context, emp *entity.Employee) {
	if err := b.store.Set(ctx, repository.KeyEmployeeID, emp.ID); err != nil {
		b.log.Warn().Err(err).Msg("no se pudo guardar el id de empleado en el caché")
		return
	}
	raw, err := json.Marshal(dto.EmployeeToDTO(emp))
	if err != nil {
		b.log.Warn().Err(err).Msg("no se pudo serializar el snapshot del empleado")
		return
	}
	if err := b.store.Set(ctx, repository.KeyEmployeeSnapshot, string(raw)); err != nil {
		b.log.Warn().Err(err).Msg("no se pudo guardar el snapshot del empleado")
	}
}
