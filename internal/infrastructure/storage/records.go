package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
)

// Representaciones serializadas de cada store. Se mantienen separadas de las
// entidades de dominio para que el formato en disco no dependa de ellas.

type medicineRecord struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Barcode        string          `json:"barcode"`
	Shelf          string          `json:"shelf"`
	Dispensing     string          `json:"dispensing"`
	Classification string          `json:"classification"`
	ReorderLevel   int             `json:"reorder_level"`
	ExpiryDate     time.Time       `json:"expiry_date"`
	Price          decimal.Decimal `json:"price"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type movementRecord struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ledgerRecord struct {
	ID         string           `json:"id"`
	MedicineID string           `json:"medicine_id"`
	Stock      int              `json:"stock"`
	UpdatedAt  time.Time        `json:"updated_at"`
	History    []movementRecord `json:"history"`
}

type saleRecord struct {
	ID           string          `json:"id"`
	MedicineID   string          `json:"medicine_id"`
	MedicineName string          `json:"medicine_name"`
	Quantity     int             `json:"quantity"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"created_at"`
	Cashier      string          `json:"cashier"`
}

type auditRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Actor     string    `json:"actor"`
	Role      string    `json:"role"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
}

type userRecord struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Conversiones registro ↔ entidad. Los repos devuelven siempre copias:
// el estado en memoria nunca se comparte con los casos de uso.

func toMedicineRecord(m *entity.Medicine) medicineRecord {
	return medicineRecord{
		ID:             m.ID,
		Name:           m.Name,
		Barcode:        m.Barcode,
		Shelf:          m.Shelf,
		Dispensing:     m.Dispensing,
		Classification: m.Classification,
		ReorderLevel:   m.ReorderLevel,
		ExpiryDate:     m.ExpiryDate,
		Price:          m.Price,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r medicineRecord) toEntity() *entity.Medicine {
	return &entity.Medicine{
		ID:             r.ID,
		Name:           r.Name,
		Barcode:        r.Barcode,
		Shelf:          r.Shelf,
		Dispensing:     r.Dispensing,
		Classification: r.Classification,
		ReorderLevel:   r.ReorderLevel,
		ExpiryDate:     r.ExpiryDate,
		Price:          r.Price,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toLedgerRecord(l *entity.LedgerRecord) ledgerRecord {
	history := make([]movementRecord, 0, len(l.History))
	for _, m := range l.History {
		history = append(history, movementRecord(m))
	}
	return ledgerRecord{
		ID:         l.ID,
		MedicineID: l.MedicineID,
		Stock:      l.Stock,
		UpdatedAt:  l.UpdatedAt,
		History:    history,
	}
}

func (r ledgerRecord) toEntity() *entity.LedgerRecord {
	history := make([]entity.Movement, 0, len(r.History))
	for _, m := range r.History {
		history = append(history, entity.Movement(m))
	}
	return &entity.LedgerRecord{
		ID:         r.ID,
		MedicineID: r.MedicineID,
		Stock:      r.Stock,
		UpdatedAt:  r.UpdatedAt,
		History:    history,
	}
}

func toSaleRecord(s *entity.Sale) saleRecord {
	return saleRecord{
		ID:           s.ID,
		MedicineID:   s.MedicineID,
		MedicineName: s.MedicineName,
		Quantity:     s.Quantity,
		Total:        s.Total,
		CreatedAt:    s.CreatedAt,
		Cashier:      s.Cashier,
	}
}

func (r saleRecord) toEntity() *entity.Sale {
	return &entity.Sale{
		ID:           r.ID,
		MedicineID:   r.MedicineID,
		MedicineName: r.MedicineName,
		Quantity:     r.Quantity,
		Total:        r.Total,
		CreatedAt:    r.CreatedAt,
		Cashier:      r.Cashier,
	}
}

func toAuditRecord(e *entity.AuditEntry) auditRecord {
	return auditRecord{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		Actor:     e.Actor,
		Role:      e.Role,
		Action:    e.Action,
		Detail:    e.Detail,
	}
}

func (r auditRecord) toEntity() *entity.AuditEntry {
	return &entity.AuditEntry{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Actor:     r.Actor,
		Role:      r.Role,
		Action:    r.Action,
		Detail:    r.Detail,
	}
}

func toUserRecord(u *entity.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}

func (r userRecord) toEntity() *entity.User {
	return &entity.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		CreatedAt:    r.CreatedAt,
	}
}
