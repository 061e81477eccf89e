package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/application/dto"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/application/session"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/repository"
	infraapi "github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/infrastructure/api"
	infrasqlite "github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/infrastructure/sqlite"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/pkg/config"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/pkg/logger"
)

// logNavigator implementación de consola del puerto Navigator: aquí no hay
// browser, así que "navegar" es dejar constancia de la ruta de login limpia.
type logNavigator struct {
	log *logger.Logger
}

func (n logNavigator) ToLogin() {
	route := session.LoginRoute(nil)
	n.log.Info().Str("route", route.String()).Msg("navegación restablecida a la ruta de login")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})

	store, err := infrasqlite.NewSessionStore(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir caché de sesión")
	}
	defer store.Close()

	client := infraapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), log)
	identity := infraapi.NewIdentityGateway(client)
	prefs := infraapi.NewPreferenceStore(client)
	employees := infraapi.NewEmployeeService(client)

	resolver := session.NewPortalResolver(prefs, log)
	onboarding := session.NewOnboardingGate(employees, log)
	boot := session.NewBootstrap(identity, store, resolver, onboarding, log)
	logout := session.NewLogout(identity, store, logNavigator{log: log}, log)

	ctx := context.Background()
	cmd := "bootstrap"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "bootstrap":
		s := boot.Run(ctx)
		fmt.Printf("estado: %s\n", boot.State())
		if s.Employee != nil {
			fmt.Printf("empleado: %s (%s)\n", s.Employee.Name, s.Employee.ID)
		}
		fmt.Printf("portal: %s\n", s.Portal)
		fmt.Printf("onboarding pendiente: %v\n", s.OnboardingPending)
		fmt.Printf("asistente pendiente: %v\n", s.SetupWizardPending)

	case "login":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "uso: portal login <token>")
			os.Exit(1)
		}
		token := strings.TrimSpace(os.Args[2])
		if err := store.Set(ctx, repository.KeyAuthToken, token); err != nil {
			log.Fatal().Err(err).Msg("guardar credencial")
		}
		fmt.Println("credencial guardada; ejecute 'portal bootstrap' para iniciar la sesión")

	case "logout":
		// El bootstrap valida primero para saber qué credencial notificar; si la
		// verificación falla igual se termina con el caché limpio.
		s := boot.Run(ctx)
		logout.Run(ctx, s)
		fmt.Println("sesión cerrada")

	case "whoami":
		raw, err := store.Get(ctx, repository.KeyEmployeeSnapshot)
		if err != nil {
			log.Fatal().Err(err).Msg("leer snapshot del empleado")
		}
		if raw == "" {
			fmt.Println("sin sesión en caché")
			return
		}
		var emp dto.EmployeeDTO
		if err := json.Unmarshal([]byte(raw), &emp); err != nil {
			log.Fatal().Err(err).Msg("snapshot de empleado corrupto")
		}
		// Vista informativa del último verify; el estado autoritativo se vuelve
		// a derivar del backend en cada arranque.
		fmt.Printf("empleado: %s <%s>\n", emp.Name, emp.Email)
		fmt.Printf("rol: %s  cargo: %s\n", emp.Role, emp.Position)

	default:
		fmt.Fprintf(os.Stderr, "comando desconocido %q (bootstrap | login | logout | whoami)\n", cmd)
		os.Exit(1)
	}
}
