package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/arasdeocampo-max/SALES-AND-INVENTORY/pkg/jwt"
)

const (
	testSecret = "secreto-de-prueba"
	testIssuer = "pharmacy-api-test"
)

func TestGenerateYParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "usr-1", "maria", "Staff", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "usr-1", userID)
	assert.Equal(t, "maria", username)
	assert.Equal(t, "Staff", role)
}

func TestParse_SecretoIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "usr-1", "maria", "Staff", testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err, "la firma con otro secreto debe fallar")
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "usr-1", "maria", "Staff", testIssuer, -5)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token vencido debe rechazarse")
}

func TestGenerate_SecretoVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "usr-1", "maria", "Staff", testIssuer, 60)
	assert.Error(t, err)
}
