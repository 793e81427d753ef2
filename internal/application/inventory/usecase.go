package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/audit"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/dto"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/pkg/logger"
)

// UseCase motor de movimientos de inventario: ajustes manuales
// (Stock In, Stock Out, Adjustment absoluto) y baja de medicamentos.
// Toda regla se valida ANTES de cualquier escritura; una violación
// rechaza la operación completa sin movimiento, mutación ni auditoría.
type UseCase struct {
	medicineRepo repository.MedicineRepository
	ledgerRepo   repository.LedgerRepository
	auditSink    audit.Sink
	locker       *StockLocker
	log          *logger.Logger
}

// NewUseCase construye el motor de inventario.
func NewUseCase(
	medicineRepo repository.MedicineRepository,
	ledgerRepo repository.LedgerRepository,
	auditSink audit.Sink,
	locker *StockLocker,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		medicineRepo: medicineRepo,
		ledgerRepo:   ledgerRepo,
		auditSink:    auditSink,
		locker:       locker,
		log:          log,
	}
}

// ApplyAdjustment valida y aplica un movimiento manual sobre el inventario.
// Stock In suma, Stock Out resta y Adjustment fija el stock absoluto.
// Si el resultado quedara negativo se rechaza todo (validar-luego-aplicar).
func (uc *UseCase) ApplyAdjustment(ctx context.Context, in dto.AdjustmentRequest) (*dto.LedgerResponse, error) {
	switch in.Kind {
	case entity.MovementStockIn, entity.MovementStockOut:
		if in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementAdjustment:
		if in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	unlock := uc.locker.Lock(in.MedicineID)
	defer unlock()

	medicine, record, err := uc.lookup(in.MedicineID)
	if err != nil {
		return nil, err
	}

	newStock := record.Stock
	switch in.Kind {
	case entity.MovementStockIn:
		newStock += in.Quantity
	case entity.MovementStockOut:
		newStock -= in.Quantity
	case entity.MovementAdjustment:
		newStock = in.Quantity
	}
	if newStock < 0 {
		return nil, domain.ErrNegativeStock
	}

	now := time.Now()
	movement := entity.Movement{
		ID:        uuid.New().String(),
		Kind:      in.Kind,
		Quantity:  in.Quantity,
		Note:      in.Note,
		CreatedAt: now,
	}
	if err := uc.ledgerRepo.RecordMovement(in.MedicineID, movement, newStock); err != nil {
		return nil, err
	}

	uc.auditSink.Record(ctx, "Inventory Movement",
		fmt.Sprintf("%s %d para %s", in.Kind, in.Quantity, medicine.Name))

	record.Stock = newStock
	record.UpdatedAt = now
	record.History = append([]entity.Movement{movement}, record.History...)
	return toLedgerResponse(record), nil
}

// RemoveMedicine elimina el medicamento y su registro de inventario como una
// sola operación lógica (primero el ledger, luego el catálogo; con escritor
// único el orden garantiza que no queda ledger huérfano). Las ventas
// históricas conservan su snapshot y no se ven afectadas.
func (uc *UseCase) RemoveMedicine(ctx context.Context, medicineID string) error {
	unlock := uc.locker.Lock(medicineID)
	defer unlock()

	medicine, err := uc.medicineRepo.GetByID(medicineID)
	if err != nil {
		return err
	}
	if medicine == nil {
		return domain.ErrNotFound
	}
	if err := uc.ledgerRepo.DeleteByMedicineID(medicineID); err != nil {
		return err
	}
	if err := uc.medicineRepo.Delete(medicineID); err != nil {
		return err
	}
	uc.auditSink.Record(ctx, "Delete Medicine", medicine.Name)
	return nil
}

// GetLedger devuelve el stock actual y el historial de un medicamento.
func (uc *UseCase) GetLedger(medicineID string) (*dto.LedgerResponse, error) {
	_, record, err := uc.lookup(medicineID)
	if err != nil {
		return nil, err
	}
	return toLedgerResponse(record), nil
}

// lookup resuelve el par medicamento + ledger. Medicamento ausente es
// ErrNotFound; medicamento presente sin ledger es corrupción del store y
// se loguea como error de integridad, nunca como validación de usuario.
func (uc *UseCase) lookup(medicineID string) (*entity.Medicine, *entity.LedgerRecord, error) {
	medicine, err := uc.medicineRepo.GetByID(medicineID)
	if err != nil {
		return nil, nil, err
	}
	if medicine == nil {
		return nil, nil, domain.ErrNotFound
	}
	record, err := uc.ledgerRepo.GetByMedicineID(medicineID)
	if err != nil {
		return nil, nil, err
	}
	if record == nil {
		uc.log.Error().
			Str("medicine_id", medicineID).
			Str("medicine", medicine.Name).
			Msg("medicamento sin registro de inventario")
		return nil, nil, domain.ErrDataIntegrity
	}
	return medicine, record, nil
}

func toLedgerResponse(r *entity.LedgerRecord) *dto.LedgerResponse {
	history := make([]dto.MovementResponse, 0, len(r.History))
	for _, m := range r.History {
		history = append(history, dto.MovementResponse{
			ID:        m.ID,
			Kind:      m.Kind,
			Quantity:  m.Quantity,
			Note:      m.Note,
			CreatedAt: m.CreatedAt,
		})
	}
	return &dto.LedgerResponse{
		MedicineID: r.MedicineID,
		Stock:      r.Stock,
		UpdatedAt:  r.UpdatedAt,
		History:    history,
	}
}
