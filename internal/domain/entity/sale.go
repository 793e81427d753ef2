package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es el registro inmutable de una venta por punto de venta.
// MedicineName y Total son snapshots al momento de la venta: hechos históricos,
// no referencias; un cambio de precio o un borrado posterior del medicamento
// no los altera.
type Sale struct {
	ID           string
	MedicineID   string
	MedicineName string
	Quantity     int
	Total        decimal.Decimal // Quantity × precio unitario al momento de la venta
	CreatedAt    time.Time
	Cashier      string
}
