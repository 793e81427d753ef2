package entity

import "time"

// Tipos de movimiento del libro de inventario.
const (
	MovementStockIn    = "Stock In"   // entrada
	MovementStockOut   = "Stock Out"  // salida
	MovementAdjustment = "Adjustment" // fija el stock en un valor absoluto
	MovementSale       = "POS Sale"   // venta por punto de venta
)

// Movement es un cambio registrado sobre el stock de un medicamento.
// Inmutable una vez agregado al historial. Quantity guarda la cantidad
// solicitada: delta para Stock In/Out/POS Sale, valor absoluto para Adjustment.
type Movement struct {
	ID        string
	Kind      string
	Quantity  int
	Note      string
	CreatedAt time.Time
}

// LedgerRecord es el registro de inventario de un medicamento (relación 1:1).
// Invariante: Stock >= 0 y siempre igual al efecto neto de todos los
// movimientos aceptados desde la creación. History va de más reciente a más antiguo.
type LedgerRecord struct {
	ID         string
	MedicineID string
	Stock      int
	UpdatedAt  time.Time
	History    []Movement
}
