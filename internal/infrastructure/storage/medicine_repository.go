package storage

import (
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
)

var _ repository.MedicineRepository = (*MedicineRepo)(nil)

// MedicineRepo implementación del puerto MedicineRepository sobre el snapshot store.
type MedicineRepo struct {
	store *Store
}

// NewMedicineRepository construye el adaptador de persistencia para el catálogo.
func NewMedicineRepository(store *Store) *MedicineRepo {
	return &MedicineRepo{store: store}
}

// Create agrega un medicamento y persiste el catálogo.
func (r *MedicineRepo) Create(medicine *entity.Medicine) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.medicines {
		if m.Barcode == medicine.Barcode {
			return domain.ErrDuplicateBarcode
		}
	}
	r.store.medicines = append(r.store.medicines, toMedicineRecord(medicine))
	return r.store.save(keyMedicines, r.store.medicines)
}

// GetByID devuelve el medicamento o (nil, nil) si no existe.
func (r *MedicineRepo) GetByID(id string) (*entity.Medicine, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.medicines {
		if m.ID == id {
			return m.toEntity(), nil
		}
	}
	return nil, nil
}

// GetByBarcode devuelve el medicamento o (nil, nil) si no existe.
func (r *MedicineRepo) GetByBarcode(barcode string) (*entity.Medicine, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.medicines {
		if m.Barcode == barcode {
			return m.toEntity(), nil
		}
	}
	return nil, nil
}

// Update reemplaza un medicamento existente y persiste el catálogo.
func (r *MedicineRepo) Update(medicine *entity.Medicine) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, m := range r.store.medicines {
		if m.ID == medicine.ID {
			r.store.medicines[i] = toMedicineRecord(medicine)
			return r.store.save(keyMedicines, r.store.medicines)
		}
	}
	return domain.ErrNotFound
}

// List devuelve el catálogo completo en orden de inserción.
func (r *MedicineRepo) List() ([]*entity.Medicine, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.Medicine, 0, len(r.store.medicines))
	for _, m := range r.store.medicines {
		out = append(out, m.toEntity())
	}
	return out, nil
}

// Delete elimina un medicamento del catálogo. Borrar un ID inexistente no es error.
func (r *MedicineRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.medicines[:0]
	for _, m := range r.store.medicines {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	r.store.medicines = kept
	return r.store.save(keyMedicines, r.store.medicines)
}
