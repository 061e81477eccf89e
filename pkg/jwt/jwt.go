package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios del backend.
// El cliente solo los lee con fines informativos: la validación real de la
// credencial siempre la hace el backend vía /api/auth/verify.
type Claims struct {
	jwt.RegisteredClaims
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"` // "admin" | "finance" | "supervisor" | "employee"
}

// Inspect decodifica los claims del token SIN validar la firma. Sirve para
// loguear identidad y expiración antes de verificar contra el backend; nunca
// debe usarse para decidir acceso.
func Inspect(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("jwt: decodificar claims: %w", err)
	}
	return claims, nil
}

// Generate genera un token JWT firmado con employeeID y role. Lo usa el backend
// de pruebas de esta suite; el cliente real recibe los tokens ya emitidos.
func Generate(secret, employeeID, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   employeeID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		EmployeeID: employeeID,
		Role:       role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
