package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/audit"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/dto"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/identity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/inventory"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/pkg/logger"
)

// unknownCashier se usa cuando la venta llega sin sesión identificada.
const unknownCashier = "unknown"

// saleNote nota fija del movimiento generado por una venta del POS.
const saleNote = "Sold via POS"

// UseCase motor de ventas del punto de venta. Las precondiciones se
// verifican en orden (gana la primera falla, sin efectos secundarios):
// existencia, vencimiento, receta para RX, cantidad válida y stock suficiente.
type UseCase struct {
	medicineRepo repository.MedicineRepository
	ledgerRepo   repository.LedgerRepository
	saleRepo     repository.SaleRepository
	auditSink    audit.Sink
	idProvider   identity.Provider
	locker       *inventory.StockLocker
	log          *logger.Logger
}

// NewUseCase construye el motor de ventas.
func NewUseCase(
	medicineRepo repository.MedicineRepository,
	ledgerRepo repository.LedgerRepository,
	saleRepo repository.SaleRepository,
	auditSink audit.Sink,
	idProvider identity.Provider,
	locker *inventory.StockLocker,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		medicineRepo: medicineRepo,
		ledgerRepo:   ledgerRepo,
		saleRepo:     saleRepo,
		auditSink:    auditSink,
		idProvider:   idProvider,
		locker:       locker,
		log:          log,
	}
}

// ApplySale valida y registra una venta. En éxito descuenta stock, agrega el
// movimiento "POS Sale", persiste la venta con nombre y total congelados al
// momento de la venta, audita y devuelve la venta para armar el recibo.
func (uc *UseCase) ApplySale(ctx context.Context, in dto.SaleRequest) (*dto.SaleResponse, error) {
	unlock := uc.locker.Lock(in.MedicineID)
	defer unlock()

	medicine, err := uc.medicineRepo.GetByID(in.MedicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, domain.ErrNotFound
	}
	record, err := uc.ledgerRepo.GetByMedicineID(in.MedicineID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		uc.log.Error().
			Str("medicine_id", in.MedicineID).
			Str("medicine", medicine.Name).
			Msg("medicamento sin registro de inventario")
		return nil, domain.ErrDataIntegrity
	}

	now := time.Now()
	if medicine.IsExpired(now) {
		return nil, domain.ErrExpiredMedicine
	}
	if medicine.Dispensing == entity.DispensingRX && !in.HasPrescription {
		return nil, domain.ErrPrescriptionRequired
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity > record.Stock {
		return nil, domain.ErrInsufficientStock
	}

	// Validación completa: de aquí en adelante solo escrituras, en orden
	// ledger → venta, sin pasos que deshacer.
	movement := entity.Movement{
		ID:        uuid.New().String(),
		Kind:      entity.MovementSale,
		Quantity:  in.Quantity,
		Note:      saleNote,
		CreatedAt: now,
	}
	if err := uc.ledgerRepo.RecordMovement(in.MedicineID, movement, record.Stock-in.Quantity); err != nil {
		return nil, err
	}

	cashier := unknownCashier
	if actor, ok := uc.idProvider.CurrentActor(ctx); ok {
		cashier = actor.Name
	}
	sale := &entity.Sale{
		ID:           uuid.New().String(),
		MedicineID:   medicine.ID,
		MedicineName: medicine.Name, // snapshot: un borrado posterior no lo invalida
		Quantity:     in.Quantity,
		Total:        medicine.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
		CreatedAt:    now,
		Cashier:      cashier,
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}

	uc.auditSink.Record(ctx, "POS Sale", fmt.Sprintf("%s x%d", medicine.Name, in.Quantity))
	return toSaleResponse(sale), nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:           s.ID,
		MedicineID:   s.MedicineID,
		MedicineName: s.MedicineName,
		Quantity:     s.Quantity,
		Total:        s.Total,
		CreatedAt:    s.CreatedAt,
		Cashier:      s.Cashier,
	}
}
