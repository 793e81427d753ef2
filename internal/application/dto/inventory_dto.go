package dto

import "time"

// AdjustmentRequest body para POST /api/inventory/movements.
// Kind: "Stock In" | "Stock Out" | "Adjustment". Para Adjustment,
// Quantity es el nuevo stock absoluto; para el resto, el delta.
type AdjustmentRequest struct {
	MedicineID string `json:"medicine_id"`
	Kind       string `json:"kind"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note,omitempty"`
}

// MovementResponse un movimiento del historial.
type MovementResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LedgerResponse registro de inventario con su historial (más reciente primero).
type LedgerResponse struct {
	MedicineID string             `json:"medicine_id"`
	Stock      int                `json:"stock"`
	UpdatedAt  time.Time          `json:"updated_at"`
	History    []MovementResponse `json:"history"`
}

// StockItemResponse fila de la proyección de stock actual.
type StockItemResponse struct {
	MedicineID string    `json:"medicine_id"`
	Name       string    `json:"name"`
	Barcode    string    `json:"barcode"`
	Stock      int       `json:"stock"`
	UpdatedAt  time.Time `json:"updated_at"`
}
