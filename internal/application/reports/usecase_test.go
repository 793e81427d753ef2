package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/audit"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/catalog"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/dto"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/identity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/inventory"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/reports"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/infrastructure/storage"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	catalog   *catalog.UseCase
	inventory *inventory.UseCase
	reports   *reports.UseCase
	sales     repository.SaleRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	recorder := audit.NewRecorder(storage.NewAuditRepository(store), identity.ContextProvider{}, log)
	medicineRepo := storage.NewMedicineRepository(store)
	ledgerRepo := storage.NewLedgerRepository(store)
	saleRepo := storage.NewSaleRepository(store)

	return &testEnv{
		catalog:   catalog.NewUseCase(medicineRepo, ledgerRepo, recorder),
		inventory: inventory.NewUseCase(medicineRepo, ledgerRepo, recorder, inventory.NewStockLocker(), log),
		reports:   reports.NewUseCase(medicineRepo, ledgerRepo, saleRepo),
		sales:     saleRepo,
	}
}

func mustCreateStocked(t *testing.T, env *testEnv, name string, reorderLevel, stock int) string {
	t.Helper()
	out, err := env.catalog.Save(context.Background(), dto.SaveMedicineRequest{
		Name:           name,
		Barcode:        "BC-" + name,
		Shelf:          "A1",
		Dispensing:     entity.DispensingOTC,
		Classification: "Tablet/Capsule",
		ReorderLevel:   reorderLevel,
		ExpiryDate:     "2030-01-01",
		Price:          decimal.RequireFromString("5.00"),
	})
	require.NoError(t, err)
	if stock > 0 {
		_, err = env.inventory.ApplyAdjustment(context.Background(), dto.AdjustmentRequest{
			MedicineID: out.ID,
			Kind:       entity.MovementStockIn,
			Quantity:   stock,
		})
		require.NoError(t, err)
	}
	return out.ID
}

func mustCreateSale(t *testing.T, env *testEnv, total string, at time.Time) {
	t.Helper()
	require.NoError(t, env.sales.Create(&entity.Sale{
		ID:           uuid.New().String(),
		MedicineID:   uuid.New().String(),
		MedicineName: "Demo",
		Quantity:     1,
		Total:        decimal.RequireFromString(total),
		CreatedAt:    at,
		Cashier:      "test",
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reposición
// ──────────────────────────────────────────────────────────────────────────────

// El umbral es inclusivo: stock == umbral ya pide reposición.
func TestReorderList_UmbralInclusivo(t *testing.T) {
	env := newTestEnv(t)
	mustCreateStocked(t, env, "EnUmbral", 10, 10)
	mustCreateStocked(t, env, "BajoUmbral", 10, 3)
	mustCreateStocked(t, env, "SobreUmbral", 10, 11)
	mustCreateStocked(t, env, "SinStock", 0, 0)

	items, err := env.reports.ReorderList()
	require.NoError(t, err)
	nombres := make([]string, 0, len(items))
	for _, it := range items {
		nombres = append(nombres, it.Name)
	}
	assert.ElementsMatch(t, []string{"EnUmbral", "BajoUmbral", "SinStock"}, nombres,
		"stock <= umbral entra a la lista; por encima no")
}

// Recomputar sin mutaciones intermedias da exactamente lo mismo, y el
// contador de bajo stock nunca diverge de la lista.
func TestReorderList_IdempotenteYConsistente(t *testing.T) {
	env := newTestEnv(t)
	mustCreateStocked(t, env, "Paracetamol", 20, 9)
	mustCreateStocked(t, env, "Ibuprofeno", 5, 30)

	primera, err := env.reports.ReorderList()
	require.NoError(t, err)
	segunda, err := env.reports.ReorderList()
	require.NoError(t, err)
	assert.Equal(t, primera, segunda, "la vista derivada es determinista")

	count, err := env.reports.LowStockCount()
	require.NoError(t, err)
	assert.Equal(t, len(primera), count, "el contador se deriva de la misma lista")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ingresos
// ──────────────────────────────────────────────────────────────────────────────

// La suma de ingresos es decimal exacta y respeta el límite [inicio, fin) del día.
func TestRevenueForDay(t *testing.T) {
	env := newTestEnv(t)
	hoy := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)

	mustCreateSale(t, env, "0.10", hoy.Add(9*time.Hour))
	mustCreateSale(t, env, "0.20", hoy.Add(14*time.Hour))
	mustCreateSale(t, env, "36.00", hoy.Add(23*time.Hour+59*time.Minute))
	mustCreateSale(t, env, "99.99", hoy.AddDate(0, 0, -1).Add(12*time.Hour)) // ayer
	mustCreateSale(t, env, "50.00", hoy.AddDate(0, 0, 1))                    // medianoche de mañana, fuera

	out, err := env.reports.RevenueForDay(hoy.Add(10 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28", out.Date)
	assert.Equal(t, 3, out.Count, "solo las ventas del día cuentan")
	assert.True(t, out.Total.Equal(decimal.RequireFromString("36.30")),
		"la suma decimal debe ser exacta: esperado 36.30, fue %s", out.Total)
}

func TestTotalRevenue(t *testing.T) {
	env := newTestEnv(t)
	mustCreateSale(t, env, "10.00", time.Now().AddDate(0, -1, 0))
	mustCreateSale(t, env, "2.50", time.Now())

	out, err := env.reports.TotalRevenue()
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("12.50")))
	assert.Empty(t, out.Date, "el total histórico no lleva fecha")
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock, historial y dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestStockList_FiltraYOmiteHuerfanos(t *testing.T) {
	env := newTestEnv(t)
	mustCreateStocked(t, env, "Paracetamol", 5, 45)
	mustCreateStocked(t, env, "Ibuprofeno", 5, 35)

	items, err := env.reports.StockList("")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = env.reports.StockList("paraceta")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 45, items[0].Stock)
}

func TestSalesHistory_Paginado(t *testing.T) {
	env := newTestEnv(t)
	base := time.Now()
	for i := 0; i < 5; i++ {
		mustCreateSale(t, env, "1.00", base.Add(time.Duration(i)*time.Minute))
	}

	out, err := env.reports.SalesHistory(dto.PageRequest{Limit: 2, Offset: 0})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].CreatedAt.After(out.Items[1].CreatedAt),
		"el historial va de más reciente a más antiguo")

	out, err = env.reports.SalesHistory(dto.PageRequest{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1, "la última página queda corta")
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	mustCreateStocked(t, env, "Paracetamol", 20, 9) // bajo umbral
	mustCreateStocked(t, env, "Ibuprofeno", 5, 30)
	mustCreateSale(t, env, "7.25", time.Now())

	out, err := env.reports.Dashboard(time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, out.Medicines)
	assert.Equal(t, 39, out.TotalStock)
	assert.Equal(t, 1, out.LowStock)
	assert.True(t, out.TodayRevenue.Equal(decimal.RequireFromString("7.25")))
}
