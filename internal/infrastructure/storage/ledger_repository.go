package storage

import (
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del puerto LedgerRepository sobre el snapshot store.
type LedgerRepo struct {
	store *Store
}

// NewLedgerRepository construye el adaptador de persistencia para el inventario.
func NewLedgerRepository(store *Store) *LedgerRepo {
	return &LedgerRepo{store: store}
}

// Create inicializa el registro de inventario de un medicamento.
func (r *LedgerRepo) Create(record *entity.LedgerRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.ledgers = append(r.store.ledgers, toLedgerRecord(record))
	return r.store.save(keyInventory, r.store.ledgers)
}

// GetByMedicineID devuelve el registro o (nil, nil) si no existe.
func (r *LedgerRepo) GetByMedicineID(medicineID string) (*entity.LedgerRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, l := range r.store.ledgers {
		if l.MedicineID == medicineID {
			return l.toEntity(), nil
		}
	}
	return nil, nil
}

// RecordMovement aplica en una sola escritura el nuevo stock, el movimiento
// al frente del historial y el timestamp de actualización.
func (r *LedgerRepo) RecordMovement(medicineID string, movement entity.Movement, newStock int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.ledgers {
		if r.store.ledgers[i].MedicineID != medicineID {
			continue
		}
		l := &r.store.ledgers[i]
		l.Stock = newStock
		l.UpdatedAt = movement.CreatedAt
		l.History = append([]movementRecord{movementRecord(movement)}, l.History...)
		return r.store.save(keyInventory, r.store.ledgers)
	}
	return domain.ErrNotFound
}

// List devuelve todos los registros en orden de inserción.
func (r *LedgerRepo) List() ([]*entity.LedgerRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.LedgerRecord, 0, len(r.store.ledgers))
	for _, l := range r.store.ledgers {
		out = append(out, l.toEntity())
	}
	return out, nil
}

// DeleteByMedicineID elimina el registro del medicamento (cascada de borrado).
func (r *LedgerRepo) DeleteByMedicineID(medicineID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.ledgers[:0]
	for _, l := range r.store.ledgers {
		if l.MedicineID != medicineID {
			kept = append(kept, l)
		}
	}
	r.store.ledgers = kept
	return r.store.save(keyInventory, r.store.ledgers)
}
