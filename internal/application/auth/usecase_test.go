package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/audit"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/auth"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/dto"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/identity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/infrastructure/storage"
	pkgjwt "github.com/arasdeocampo-max/SALES-AND-INVENTORY/pkg/jwt"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/pkg/logger"
)

const testSecret = "secreto-de-prueba"

func newAuthEnv(t *testing.T) (*auth.UseCase, *audit.Recorder) {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	recorder := audit.NewRecorder(storage.NewAuditRepository(store), identity.ContextProvider{}, log)
	uc := auth.NewUseCase(storage.NewUserRepository(store), recorder, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "pharmacy-api-test",
	})
	return uc, recorder
}

// Registro y login completos: el token resultante lleva username y rol.
func TestRegisterYLogin(t *testing.T) {
	uc, _ := newAuthEnv(t)
	ctx := context.Background()

	user, err := uc.Register(ctx, dto.RegisterRequest{
		Username: "maria",
		Password: "secreta123",
		Role:     entity.RoleStaff,
	})
	require.NoError(t, err)
	assert.Equal(t, "maria", user.Username)
	assert.Equal(t, entity.RoleStaff, user.Role)

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)
	_, username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "maria", username)
	assert.Equal(t, entity.RoleStaff, role)
}

// Sin rol explícito la cuenta queda como Staff.
func TestRegister_RolPorDefecto(t *testing.T) {
	uc, _ := newAuthEnv(t)
	user, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "pedro",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, user.Role)
}

func TestRegister_UsernameOcupado(t *testing.T) {
	uc, _ := newAuthEnv(t)
	ctx := context.Background()
	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Username: "maria", Password: "otra456"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuthEnv(t)
	ctx := context.Background()
	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// El login queda auditado y firmado por el usuario que entra.
func TestLogin_Auditado(t *testing.T) {
	uc, recorder := newAuthEnv(t)
	ctx := context.Background()
	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)

	entries, err := recorder.List(10, 0)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "Login", entries[0].Action)
	assert.Equal(t, "maria", entries[0].Actor, "la entrada se firma con el actor recién autenticado")
}
