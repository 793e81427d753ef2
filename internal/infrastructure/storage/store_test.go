package storage_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/infrastructure/storage"
)

func sampleMedicine(id, barcode string) *entity.Medicine {
	now := time.Now().Truncate(time.Second)
	return &entity.Medicine{
		ID:             id,
		Name:           "Paracetamol 500mg",
		Barcode:        barcode,
		Shelf:          "A1",
		Dispensing:     entity.DispensingOTC,
		Classification: "Tablet/Capsule",
		ReorderLevel:   20,
		ExpiryDate:     time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC),
		Price:          decimal.RequireFromString("3.50"),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Los snapshots sobreviven a reabrir el store: Load devuelve el último Save.
func TestStore_ReabrirConservaDatos(t *testing.T) {
	dir := t.TempDir()

	store, err := storage.Open(dir)
	require.NoError(t, err)
	medicines := storage.NewMedicineRepository(store)
	ledgers := storage.NewLedgerRepository(store)
	require.NoError(t, medicines.Create(sampleMedicine("med-1", "480000111001")))
	require.NoError(t, ledgers.Create(&entity.LedgerRecord{
		ID: "led-1", MedicineID: "med-1", Stock: 0, UpdatedAt: time.Now(),
	}))
	mov := entity.Movement{ID: "mov-1", Kind: entity.MovementStockIn, Quantity: 10, Note: "Initial load", CreatedAt: time.Now()}
	require.NoError(t, ledgers.RecordMovement("med-1", mov, 10))

	// Reabrir desde disco.
	reopened, err := storage.Open(dir)
	require.NoError(t, err)

	med, err := storage.NewMedicineRepository(reopened).GetByID("med-1")
	require.NoError(t, err)
	require.NotNil(t, med)
	assert.Equal(t, "Paracetamol 500mg", med.Name)
	assert.True(t, med.Price.Equal(decimal.RequireFromString("3.50")),
		"el precio decimal debe sobrevivir el round-trip JSON")

	record, err := storage.NewLedgerRepository(reopened).GetByMedicineID("med-1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 10, record.Stock)
	require.Len(t, record.History, 1)
	assert.Equal(t, entity.MovementStockIn, record.History[0].Kind)
}

// Los repos devuelven copias: mutar lo leído no altera el store.
func TestStore_LecturasSonCopias(t *testing.T) {
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	medicines := storage.NewMedicineRepository(store)
	require.NoError(t, medicines.Create(sampleMedicine("med-1", "480000111001")))

	leido, err := medicines.GetByID("med-1")
	require.NoError(t, err)
	leido.Name = "Mutado"

	otraVez, err := medicines.GetByID("med-1")
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol 500mg", otraVez.Name, "la mutación externa no toca el store")
}

func TestMedicineRepo_BarcodeDuplicado(t *testing.T) {
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	medicines := storage.NewMedicineRepository(store)
	require.NoError(t, medicines.Create(sampleMedicine("med-1", "480000111001")))

	err = medicines.Create(sampleMedicine("med-2", "480000111001"))
	assert.ErrorIs(t, err, domain.ErrDuplicateBarcode)
}

func TestSaleRepo_ListBetween(t *testing.T) {
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	sales := storage.NewSaleRepository(store)

	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	for i, total := range []string{"1.00", "2.00", "3.00"} {
		require.NoError(t, sales.Create(&entity.Sale{
			ID:         time.Now().Format("150405.000000") + total,
			MedicineID: "med-1",
			Quantity:   1,
			Total:      decimal.RequireFromString(total),
			CreatedAt:  base.AddDate(0, 0, i),
			Cashier:    "test",
		}))
	}

	// [28, 29) incluye solo la primera venta.
	got, err := sales.ListBetween(base, base.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Total.Equal(decimal.RequireFromString("1.00")))

	// Extremos en cero: sin límite.
	got, err = sales.ListBetween(time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestLedgerRepo_MovimientoSinRegistro(t *testing.T) {
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	ledgers := storage.NewLedgerRepository(store)

	mov := entity.Movement{ID: "mov-1", Kind: entity.MovementStockIn, Quantity: 5, CreatedAt: time.Now()}
	err = ledgers.RecordMovement("no-existe", mov, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
