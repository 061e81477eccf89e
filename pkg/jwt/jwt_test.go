package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/pkg/jwt"
)

func TestGenerateEInspect(t *testing.T) {
	tok, err := pkgjwt.Generate("secret-de-test", "emp-9", "supervisor", "oxford-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Inspect(tok)
	require.NoError(t, err)

	assert.Equal(t, "emp-9", claims.EmployeeID)
	assert.Equal(t, "supervisor", claims.Role)
	assert.Equal(t, "oxford-test", claims.Issuer)
}

func TestInspect_TokenMalformado(t *testing.T) {
	_, err := pkgjwt.Inspect("no.es.jwt")
	assert.Error(t, err, "un token malformado debe retornar error")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "emp-9", "admin", "oxford-test", 60)
	assert.Error(t, err)
}
