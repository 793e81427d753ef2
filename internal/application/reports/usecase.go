package reports

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/dto"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
)

// UseCase proyecciones de solo lectura sobre catálogo, inventario y ventas.
// Ninguna operación de este paquete muta estado; recomputar dos veces sin
// mutaciones intermedias produce exactamente el mismo resultado.
type UseCase struct {
	medicineRepo repository.MedicineRepository
	ledgerRepo   repository.LedgerRepository
	saleRepo     repository.SaleRepository
}

// NewUseCase construye las vistas derivadas.
func NewUseCase(
	medicineRepo repository.MedicineRepository,
	ledgerRepo repository.LedgerRepository,
	saleRepo repository.SaleRepository,
) *UseCase {
	return &UseCase{medicineRepo: medicineRepo, ledgerRepo: ledgerRepo, saleRepo: saleRepo}
}

// StockList proyección de stock actual con datos del catálogo, filtrable por
// nombre o barcode. Registros cuyo medicamento ya no existe se omiten.
func (uc *UseCase) StockList(query string) ([]dto.StockItemResponse, error) {
	records, err := uc.ledgerRepo.List()
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	items := make([]dto.StockItemResponse, 0, len(records))
	for _, r := range records {
		medicine, err := uc.medicineRepo.GetByID(r.MedicineID)
		if err != nil {
			return nil, err
		}
		if medicine == nil {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(medicine.Name+" "+medicine.Barcode), query) {
			continue
		}
		items = append(items, dto.StockItemResponse{
			MedicineID: r.MedicineID,
			Name:       medicine.Name,
			Barcode:    medicine.Barcode,
			Stock:      r.Stock,
			UpdatedAt:  r.UpdatedAt,
		})
	}
	return items, nil
}

// ReorderList medicamentos con stock en o bajo su umbral de reposición.
// El orden sigue la iteración del ledger.
func (uc *UseCase) ReorderList() ([]dto.ReorderItemResponse, error) {
	records, err := uc.ledgerRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReorderItemResponse, 0)
	for _, r := range records {
		medicine, err := uc.medicineRepo.GetByID(r.MedicineID)
		if err != nil {
			return nil, err
		}
		if medicine == nil || !needsReorder(r, medicine) {
			continue
		}
		items = append(items, dto.ReorderItemResponse{
			MedicineID:   r.MedicineID,
			Name:         medicine.Name,
			Shelf:        medicine.Shelf,
			Stock:        r.Stock,
			ReorderLevel: medicine.ReorderLevel,
		})
	}
	return items, nil
}

// LowStockCount cantidad de medicamentos bajo umbral. Se deriva de la misma
// computación que ReorderList para que ambos nunca diverjan.
func (uc *UseCase) LowStockCount() (int, error) {
	items, err := uc.ReorderList()
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// needsReorder predicado único de reposición: stock <= umbral.
func needsReorder(r *entity.LedgerRecord, m *entity.Medicine) bool {
	return r.Stock <= m.ReorderLevel
}

// RevenueForDay suma de ventas del día calendario dado (decimal, sin
// acumulación en punto flotante binario).
func (uc *UseCase) RevenueForDay(day time.Time) (*dto.RevenueResponse, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	sales, err := uc.saleRepo.ListBetween(start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	total := sumTotals(sales)
	return &dto.RevenueResponse{
		Date:  start.Format(dto.DateLayout),
		Total: total,
		Count: len(sales),
	}, nil
}

// TotalRevenue suma de todas las ventas registradas.
func (uc *UseCase) TotalRevenue() (*dto.RevenueResponse, error) {
	sales, err := uc.saleRepo.ListBetween(time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	return &dto.RevenueResponse{Total: sumTotals(sales), Count: len(sales)}, nil
}

func sumTotals(sales []*entity.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Total)
	}
	return total
}

// SalesHistory ventas de más reciente a más antigua, paginadas.
func (uc *UseCase) SalesHistory(page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	sales, err := uc.saleRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, dto.SaleResponse{
			ID:           s.ID,
			MedicineID:   s.MedicineID,
			MedicineName: s.MedicineName,
			Quantity:     s.Quantity,
			Total:        s.Total,
			CreatedAt:    s.CreatedAt,
			Cashier:      s.Cashier,
		})
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Dashboard KPIs del tablero: medicamentos, stock total, bajo umbral e
// ingresos del día.
func (uc *UseCase) Dashboard(now time.Time) (*dto.DashboardResponse, error) {
	medicines, err := uc.medicineRepo.List()
	if err != nil {
		return nil, err
	}
	records, err := uc.ledgerRepo.List()
	if err != nil {
		return nil, err
	}
	totalStock := 0
	for _, r := range records {
		totalStock += r.Stock
	}
	lowStock, err := uc.LowStockCount()
	if err != nil {
		return nil, err
	}
	revenue, err := uc.RevenueForDay(now)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Medicines:    len(medicines),
		TotalStock:   totalStock,
		LowStock:     lowStock,
		TodayRevenue: revenue.Total,
	}, nil
}
