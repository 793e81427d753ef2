package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/audit"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/catalog"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/dto"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/identity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/infrastructure/storage"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	catalog *catalog.UseCase
	ledgers repository.LedgerRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	recorder := audit.NewRecorder(storage.NewAuditRepository(store), identity.ContextProvider{}, log)
	ledgerRepo := storage.NewLedgerRepository(store)
	return &testEnv{
		catalog: catalog.NewUseCase(storage.NewMedicineRepository(store), ledgerRepo, recorder),
		ledgers: ledgerRepo,
	}
}

func validRequest(name, barcode string) dto.SaveMedicineRequest {
	return dto.SaveMedicineRequest{
		Name:           name,
		Barcode:        barcode,
		Shelf:          "A1",
		Dispensing:     entity.DispensingOTC,
		Classification: "Tablet/Capsule",
		ReorderLevel:   10,
		ExpiryDate:     "2030-01-01",
		Price:          decimal.RequireFromString("3.50"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta y actualización
// ──────────────────────────────────────────────────────────────────────────────

// El alta crea el medicamento y su registro de inventario en cero, una sola vez.
func TestSave_AltaCreaLedgerEnCero(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.catalog.Save(context.Background(), validRequest("Paracetamol 500mg", "480000111001"))
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID, "el alta debe asignar un ID")

	record, err := env.ledgers.GetByMedicineID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, record, "el alta debe crear el registro de inventario")
	assert.Equal(t, 0, record.Stock, "el stock inicial es cero")
	assert.Empty(t, record.History, "el historial inicial está vacío")

	records, err := env.ledgers.List()
	require.NoError(t, err)
	assert.Len(t, records, 1, "debe existir exactamente un registro de inventario")
}

// La actualización no toca el ledger ni crea uno nuevo.
func TestSave_ActualizacionConservaLedger(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.catalog.Save(context.Background(), validRequest("Cetirizine 10mg", "480000111003"))
	require.NoError(t, err)

	in := validRequest("Cetirizine 10mg (nuevo)", "480000111003")
	in.ID = out.ID
	updated, err := env.catalog.Save(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Cetirizine 10mg (nuevo)", updated.Name)

	records, err := env.ledgers.List()
	require.NoError(t, err)
	assert.Len(t, records, 1, "actualizar no debe crear otro registro de inventario")
}

func TestSave_ActualizacionInexistente(t *testing.T) {
	env := newTestEnv(t)
	in := validRequest("Fantasma", "000")
	in.ID = "no-existe"
	_, err := env.catalog.Save(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Campos requeridos y valores fuera de rango.
func TestSave_Validaciones(t *testing.T) {
	env := newTestEnv(t)
	casos := []struct {
		nombre string
		mutar  func(*dto.SaveMedicineRequest)
	}{
		{"nombre vacío", func(r *dto.SaveMedicineRequest) { r.Name = "   " }},
		{"barcode vacío", func(r *dto.SaveMedicineRequest) { r.Barcode = "" }},
		{"clasificación vacía", func(r *dto.SaveMedicineRequest) { r.Classification = "" }},
		{"dispensación desconocida", func(r *dto.SaveMedicineRequest) { r.Dispensing = "FREE" }},
		{"umbral negativo", func(r *dto.SaveMedicineRequest) { r.ReorderLevel = -1 }},
		{"precio negativo", func(r *dto.SaveMedicineRequest) { r.Price = decimal.RequireFromString("-1") }},
		{"fecha malformada", func(r *dto.SaveMedicineRequest) { r.ExpiryDate = "01/15/2030" }},
	}
	for _, c := range casos {
		in := validRequest("Test", "BC-1")
		c.mutar(&in)
		_, err := env.catalog.Save(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, c.nombre)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Unicidad de barcode
// ──────────────────────────────────────────────────────────────────────────────

// Barcode duplicado se rechaza; nombres repetidos se permiten.
func TestSave_BarcodeDuplicado(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.catalog.Save(context.Background(), validRequest("Amoxicillin 500mg", "480000111002"))
	require.NoError(t, err)

	_, err = env.catalog.Save(context.Background(), validRequest("Otro nombre", "480000111002"))
	assert.ErrorIs(t, err, domain.ErrDuplicateBarcode)

	_, err = env.catalog.Save(context.Background(), validRequest("Amoxicillin 500mg", "480000111099"))
	assert.NoError(t, err, "el mismo nombre con otro barcode es válido")
}

// Al actualizar, el medicamento conserva su propio barcode sin conflicto.
func TestSave_ActualizarConservaSuBarcode(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.catalog.Save(context.Background(), validRequest("Losartan 50mg", "480000111004"))
	require.NoError(t, err)

	in := validRequest("Losartan 50mg", "480000111004")
	in.ID = out.ID
	in.Shelf = "C9"
	_, err = env.catalog.Save(context.Background(), in)
	assert.NoError(t, err, "conservar el propio barcode no es duplicado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_FiltraPorNombreBarcodeYEstanteria(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.catalog.Save(ctx, validRequest("Paracetamol 500mg", "480000111001"))
	require.NoError(t, err)
	in := validRequest("Ibuprofen 400mg", "480000111005")
	in.Shelf = "B7"
	_, err = env.catalog.Save(ctx, in)
	require.NoError(t, err)

	casos := []struct {
		query     string
		esperados int
	}{
		{"", 2},
		{"paraceta", 1},
		{"480000111005", 1},
		{"b7", 1},
		{"no-existe", 0},
	}
	for _, c := range casos {
		out, err := env.catalog.Search(c.query)
		require.NoError(t, err)
		assert.Len(t, out.Items, c.esperados, "query %q", c.query)
	}
}

func TestGetByBarcode(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.catalog.Save(context.Background(), validRequest("Insulin Vial", "480000111015"))
	require.NoError(t, err)

	out, err := env.catalog.GetByBarcode("480000111015")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Insulin Vial", out.Name)

	out, err = env.catalog.GetByBarcode("999")
	require.NoError(t, err)
	assert.Nil(t, out, "barcode desconocido devuelve nil sin error")
}
