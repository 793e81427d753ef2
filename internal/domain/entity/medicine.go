package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de dispensación.
const (
	DispensingOTC = "OTC" // venta libre
	DispensingRX  = "RX"  // requiere receta médica
)

// Medicine representa un medicamento del catálogo de la farmacia.
// Barcode es único en todo el catálogo; ReorderLevel marca el umbral de reposición.
type Medicine struct {
	ID             string
	Name           string
	Barcode        string
	Shelf          string
	Dispensing     string // OTC | RX
	Classification string // tableta, jarabe, inyección, etc.
	ReorderLevel   int
	ExpiryDate     time.Time
	Price          decimal.Decimal // precio unitario de venta
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsExpired indica si el medicamento está vencido en la fecha dada.
// La comparación es por fecha calendario: vencido solo si ExpiryDate es
// estrictamente anterior al día de hoy (vender el mismo día de vencimiento es válido).
func (m *Medicine) IsExpired(on time.Time) bool {
	return truncateToDay(m.ExpiryDate).Before(truncateToDay(on))
}

// truncateToDay normaliza a medianoche UTC para comparar solo la fecha calendario.
func truncateToDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
