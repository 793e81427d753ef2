package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/audit"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/dto"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
)

// UseCase casos de uso del catálogo de medicamentos.
// Al crear un medicamento se crea también su registro de inventario en cero
// (exactamente una vez); el borrado en cascada vive en el motor de transacciones.
type UseCase struct {
	medicineRepo repository.MedicineRepository
	ledgerRepo   repository.LedgerRepository
	auditSink    audit.Sink
}

// NewUseCase construye el caso de uso.
func NewUseCase(medicineRepo repository.MedicineRepository, ledgerRepo repository.LedgerRepository, auditSink audit.Sink) *UseCase {
	return &UseCase{medicineRepo: medicineRepo, ledgerRepo: ledgerRepo, auditSink: auditSink}
}

// Save crea o actualiza un medicamento. Valida campos requeridos y rechaza
// códigos de barras duplicados antes de tocar el store.
func (uc *UseCase) Save(ctx context.Context, in dto.SaveMedicineRequest) (*dto.MedicineResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Barcode = strings.TrimSpace(in.Barcode)
	in.Classification = strings.TrimSpace(in.Classification)
	if in.Name == "" || in.Barcode == "" || in.Classification == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Dispensing != entity.DispensingOTC && in.Dispensing != entity.DispensingRX {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderLevel < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := time.Parse(dto.DateLayout, in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	// Unicidad de barcode en todo el catálogo. El mismo medicamento puede
	// conservar su propio código al actualizarse.
	existing, err := uc.medicineRepo.GetByBarcode(in.Barcode)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != in.ID {
		return nil, domain.ErrDuplicateBarcode
	}

	if in.ID == "" {
		return uc.create(ctx, in, expiry)
	}
	return uc.update(ctx, in, expiry)
}

func (uc *UseCase) create(ctx context.Context, in dto.SaveMedicineRequest, expiry time.Time) (*dto.MedicineResponse, error) {
	now := time.Now()
	medicine := &entity.Medicine{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Barcode:        in.Barcode,
		Shelf:          strings.TrimSpace(in.Shelf),
		Dispensing:     in.Dispensing,
		Classification: in.Classification,
		ReorderLevel:   in.ReorderLevel,
		ExpiryDate:     expiry,
		Price:          in.Price,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.medicineRepo.Create(medicine); err != nil {
		return nil, err
	}
	// Registro de inventario 1:1, stock cero, historial vacío.
	record := &entity.LedgerRecord{
		ID:         uuid.New().String(),
		MedicineID: medicine.ID,
		Stock:      0,
		UpdatedAt:  now,
		History:    []entity.Movement{},
	}
	if err := uc.ledgerRepo.Create(record); err != nil {
		return nil, err
	}
	uc.auditSink.Record(ctx, "Create Medicine", medicine.Name)
	return toMedicineResponse(medicine), nil
}

func (uc *UseCase) update(ctx context.Context, in dto.SaveMedicineRequest, expiry time.Time) (*dto.MedicineResponse, error) {
	medicine, err := uc.medicineRepo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, domain.ErrNotFound
	}
	medicine.Name = in.Name
	medicine.Barcode = in.Barcode
	medicine.Shelf = strings.TrimSpace(in.Shelf)
	medicine.Dispensing = in.Dispensing
	medicine.Classification = in.Classification
	medicine.ReorderLevel = in.ReorderLevel
	medicine.ExpiryDate = expiry
	medicine.Price = in.Price
	medicine.UpdatedAt = time.Now()
	if err := uc.medicineRepo.Update(medicine); err != nil {
		return nil, err
	}
	uc.auditSink.Record(ctx, "Update Medicine", medicine.Name)
	return toMedicineResponse(medicine), nil
}

// GetByID obtiene un medicamento por ID. Devuelve (nil, nil) si no existe.
func (uc *UseCase) GetByID(id string) (*dto.MedicineResponse, error) {
	medicine, err := uc.medicineRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toMedicineResponse(medicine), nil
}

// GetByBarcode busca por código de barras (flujo del lector del POS).
// Devuelve (nil, nil) si no existe.
func (uc *UseCase) GetByBarcode(barcode string) (*dto.MedicineResponse, error) {
	medicine, err := uc.medicineRepo.GetByBarcode(strings.TrimSpace(barcode))
	if err != nil {
		return nil, err
	}
	return toMedicineResponse(medicine), nil
}

// Search lista el catálogo filtrando por nombre, barcode o estantería.
// Con query vacío devuelve el catálogo completo.
func (uc *UseCase) Search(query string) (*dto.MedicineListResponse, error) {
	medicines, err := uc.medicineRepo.List()
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	items := make([]dto.MedicineResponse, 0, len(medicines))
	for _, m := range medicines {
		if query != "" {
			haystack := strings.ToLower(m.Name + " " + m.Barcode + " " + m.Shelf)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		items = append(items, *toMedicineResponse(m))
	}
	return &dto.MedicineListResponse{Items: items, Total: len(items)}, nil
}

func toMedicineResponse(m *entity.Medicine) *dto.MedicineResponse {
	if m == nil {
		return nil
	}
	return &dto.MedicineResponse{
		ID:             m.ID,
		Name:           m.Name,
		Barcode:        m.Barcode,
		Shelf:          m.Shelf,
		Dispensing:     m.Dispensing,
		Classification: m.Classification,
		ReorderLevel:   m.ReorderLevel,
		ExpiryDate:     m.ExpiryDate.Format(dto.DateLayout),
		Price:          m.Price,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
