package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReorderItemResponse medicamento con stock en o bajo su umbral de reposición.
type ReorderItemResponse struct {
	MedicineID   string `json:"medicine_id"`
	Name         string `json:"name"`
	Shelf        string `json:"shelf"`
	Stock        int    `json:"stock"`
	ReorderLevel int    `json:"reorder_level"`
}

// RevenueResponse agregado de ingresos. Date va vacío para el total histórico.
type RevenueResponse struct {
	Date  string          `json:"date,omitempty"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// DashboardResponse KPIs del tablero principal.
type DashboardResponse struct {
	Medicines    int             `json:"medicines"`
	TotalStock   int             `json:"total_stock"`
	LowStock     int             `json:"low_stock"`
	TodayRevenue decimal.Decimal `json:"today_revenue"`
}

// AuditEntryResponse fila del audit trail.
type AuditEntryResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Actor     string    `json:"actor"`
	Role      string    `json:"role"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
}

// AuditListResponse listado paginado de auditoría.
type AuditListResponse struct {
	Items []AuditEntryResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
