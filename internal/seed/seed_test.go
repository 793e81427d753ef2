package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/audit"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/auth"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/catalog"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/identity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/inventory"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/infrastructure/storage"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/seed"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	deps    seed.Deps
	catalog *catalog.UseCase
	store   *storage.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	recorder := audit.NewRecorder(storage.NewAuditRepository(store), identity.ContextProvider{}, log)
	medicineRepo := storage.NewMedicineRepository(store)
	ledgerRepo := storage.NewLedgerRepository(store)
	userRepo := storage.NewUserRepository(store)

	catalogUC := catalog.NewUseCase(medicineRepo, ledgerRepo, recorder)
	return &testEnv{
		deps: seed.Deps{
			AuthUC: auth.NewUseCase(userRepo, recorder, auth.JWTConfig{
				Secret: "secreto-de-test", ExpMinutes: 30, Issuer: "farmacia-test",
			}),
			CatalogUC:   catalogUC,
			InventoryUC: inventory.NewUseCase(medicineRepo, ledgerRepo, recorder, inventory.NewStockLocker(), log),
			UserRepo:    userRepo,
			Log:         log,
		},
		catalog: catalogUC,
		store:   store,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga de datos demo
// ──────────────────────────────────────────────────────────────────────────────

// El seed carga el catálogo demo completo con stock inicial y las dos cuentas.
func TestRun_CargaCatalogoCompleto(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, seed.Run(context.Background(), env.deps))

	list, err := env.catalog.Search("")
	require.NoError(t, err)
	assert.Equal(t, 52, list.Total, "el catálogo demo completo tiene 52 medicamentos")

	ledgers, err := storage.NewLedgerRepository(env.store).List()
	require.NoError(t, err)
	require.Len(t, ledgers, 52, "cada medicamento debe tener su registro de inventario")
	for _, l := range ledgers {
		assert.Greater(t, l.Stock, 0, "todo medicamento demo arranca con stock")
		require.Len(t, l.History, 1)
		assert.Equal(t, "Initial load", l.History[0].Note)
	}

	paracetamol, err := env.catalog.GetByBarcode("480000111001")
	require.NoError(t, err)
	require.NotNil(t, paracetamol)
	assert.Equal(t, "Paracetamol 500mg", paracetamol.Name)

	for _, username := range []string{"admin", "staff"} {
		u, err := env.deps.UserRepo.GetByUsername(username)
		require.NoError(t, err)
		require.NotNil(t, u, "la cuenta %s debe existir tras el seed", username)
	}
	admin, _ := env.deps.UserRepo.GetByUsername("admin")
	assert.Equal(t, entity.RoleAdmin, admin.Role)
}

// Correr el seed dos veces no duplica nada: la segunda corrida es un no-op.
func TestRun_Idempotente(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, seed.Run(context.Background(), env.deps))
	require.NoError(t, seed.Run(context.Background(), env.deps))

	list, err := env.catalog.Search("")
	require.NoError(t, err)
	assert.Equal(t, 52, list.Total, "la segunda corrida no debe duplicar el catálogo")
}
