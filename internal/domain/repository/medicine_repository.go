package repository

import "github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"

// MedicineRepository define el puerto de persistencia para el catálogo (DIP).
// Los Get* devuelven (nil, nil) cuando no existe: ausencia no es error,
// el caller decide qué hacer con ella.
type MedicineRepository interface {
	Create(medicine *entity.Medicine) error
	GetByID(id string) (*entity.Medicine, error)
	GetByBarcode(barcode string) (*entity.Medicine, error)
	Update(medicine *entity.Medicine) error
	List() ([]*entity.Medicine, error)
	Delete(id string) error
}
