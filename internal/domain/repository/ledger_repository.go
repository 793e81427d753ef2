package repository

import (
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia para los registros de inventario.
// RecordMovement es el único punto de mutación de stock e historial y lo invoca
// solo el motor de transacciones: persiste en una única escritura el nuevo stock,
// el movimiento al frente del historial y el timestamp de actualización.
// El motor valida todo antes de llamar (validar-luego-aplicar, nunca aplicar-deshacer).
type LedgerRepository interface {
	Create(record *entity.LedgerRecord) error
	GetByMedicineID(medicineID string) (*entity.LedgerRecord, error)
	RecordMovement(medicineID string, movement entity.Movement, newStock int) error
	List() ([]*entity.LedgerRecord, error)
	DeleteByMedicineID(medicineID string) error
}
