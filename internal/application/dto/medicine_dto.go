package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fecha calendario usado en la API (expiry).
const DateLayout = "2006-01-02"

// SaveMedicineRequest body para crear o actualizar un medicamento.
// Con ID vacío se crea; con ID se actualiza el existente.
type SaveMedicineRequest struct {
	ID             string          `json:"id,omitempty"`
	Name           string          `json:"name"`
	Barcode        string          `json:"barcode"`
	Shelf          string          `json:"shelf"`
	Dispensing     string          `json:"dispensing"` // OTC | RX
	Classification string          `json:"classification"`
	ReorderLevel   int             `json:"reorder_level"`
	ExpiryDate     string          `json:"expiry_date"` // YYYY-MM-DD
	Price          decimal.Decimal `json:"price"`
}

// MedicineResponse representación de un medicamento del catálogo.
type MedicineResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Barcode        string          `json:"barcode"`
	Shelf          string          `json:"shelf"`
	Dispensing     string          `json:"dispensing"`
	Classification string          `json:"classification"`
	ReorderLevel   int             `json:"reorder_level"`
	ExpiryDate     string          `json:"expiry_date"`
	Price          decimal.Decimal `json:"price"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// MedicineListResponse listado de medicamentos.
type MedicineListResponse struct {
	Items []MedicineResponse `json:"items"`
	Total int                `json:"total"`
}
