package entity

// Session es el estado de sesión del proceso. Se crea al arrancar, lo mutan
// únicamente el bootstrap, los gates, el resolver de portal y el logout, y se
// restablece a sus valores por defecto al cerrar sesión.
type Session struct {
	Credential string    // token bearer persistido; vacío si no hay sesión
	Employee   *Employee // nil hasta que verify responde con éxito
	Portal     Portal    // portal resuelto; siempre miembro del Access del empleado

	// Gates secuenciales: el asistente de configuración solo se evalúa cuando
	// el onboarding ya quedó resuelto en falso.
	OnboardingPending  bool
	SetupWizardPending bool

	Loading bool
}

// NewSession crea el estado inicial del arranque.
func NewSession() *Session {
	return &Session{Portal: PortalStaff, Loading: true}
}

// Reset restablece la sesión a los valores de cierre: sin empleado, portal staff
// y gates apagados. La credencial también se descarta.
func (s *Session) Reset() {
	s.Credential = ""
	s.Employee = nil
	s.Portal = PortalStaff
	s.OnboardingPending = false
	s.SetupWizardPending = false
	s.Loading = false
}
