package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRequest body para POST /api/pos/sales.
type SaleRequest struct {
	MedicineID      string `json:"medicine_id"`
	Quantity        int    `json:"quantity"`
	HasPrescription bool   `json:"has_prescription"`
}

// SaleResponse venta registrada; la capa de presentación arma el recibo con esto.
type SaleResponse struct {
	ID           string          `json:"id"`
	MedicineID   string          `json:"medicine_id"`
	MedicineName string          `json:"medicine_name"`
	Quantity     int             `json:"quantity"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"created_at"`
	Cashier      string          `json:"cashier"`
}

// SaleListResponse historial de ventas (más reciente primero).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
