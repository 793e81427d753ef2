// Package seed carga datos de demostración: cuentas admin/staff y un
// catálogo de farmacia con stock inicial. Pasa por los casos de uso para
// que las mismas validaciones y auditoría del runtime apliquen al seed.
package seed

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/auth"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/catalog"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/dto"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/inventory"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/pkg/logger"
)

// Deps dependencias del seeder.
type Deps struct {
	AuthUC      *auth.UseCase
	CatalogUC   *catalog.UseCase
	InventoryUC *inventory.UseCase
	UserRepo    repository.UserRepository
	Log         *logger.Logger
}

type seedMedicine struct {
	name           string
	barcode        string
	shelf          string
	dispensing     string
	classification string
	reorderLevel   int
	expiryDate     string
	price          string
	stock          int
}

var demoCatalog = []seedMedicine{
	{"Paracetamol 500mg", "480000111001", "A1", entity.DispensingOTC, "Tablet/Capsule", 20, "2027-01-15", "3.50", 45},
	{"Amoxicillin 500mg", "480000111002", "B4", entity.DispensingRX, "Capsule", 15, "2026-07-22", "12.00", 22},
	{"Cetirizine 10mg", "480000111003", "A3", entity.DispensingOTC, "Tablet/Capsule", 25, "2026-11-30", "6.50", 60},
	{"Losartan 50mg", "480000111004", "C2", entity.DispensingRX, "Tablet/Capsule", 10, "2025-12-15", "18.25", 9},
	{"Ibuprofen 400mg", "480000111005", "A2", entity.DispensingOTC, "Tablet/Capsule", 30, "2027-06-10", "4.75", 35},
	{"Cough Syrup", "480000111006", "D1", entity.DispensingOTC, "Syrup", 18, "2026-12-05", "8.50", 28},
	{"Metformin 500mg", "480000111007", "B2", entity.DispensingRX, "Tablet/Capsule", 22, "2026-08-20", "5.99", 42},
	{"Omeprazole 20mg", "480000111008", "B1", entity.DispensingRX, "Capsule", 16, "2026-09-30", "14.50", 31},
	{"Aspirin 500mg", "480000111009", "A4", entity.DispensingOTC, "Tablet/Capsule", 28, "2027-02-14", "3.25", 55},
	{"Lisinopril 10mg", "480000111010", "C1", entity.DispensingRX, "Tablet/Capsule", 12, "2026-10-15", "9.75", 19},
	{"Fluoxetine 20mg", "480000111011", "B3", entity.DispensingRX, "Capsule", 14, "2026-07-08", "16.00", 38},
	{"Atorvastatin 10mg", "480000111012", "C3", entity.DispensingRX, "Tablet/Capsule", 15, "2026-11-22", "11.25", 26},
	{"Vitamin C 500mg", "480000111013", "A5", entity.DispensingOTC, "Tablet/Capsule", 35, "2027-03-30", "2.50", 50},
	{"Multivitamin Syrup", "480000111014", "D2", entity.DispensingOTC, "Syrup", 20, "2026-10-10", "7.99", 24},
	{"Insulin Vial", "480000111015", "E1", entity.DispensingRX, "Vial", 8, "2026-06-30", "45.00", 12},
	{"Antibiotics Injection", "480000111016", "E2", entity.DispensingRX, "Injection", 10, "2026-08-12", "22.50", 18},
	{"Antihistamine Cream", "480000111017", "F1", entity.DispensingOTC, "Cream/Ointment", 12, "2026-12-20", "6.75", 15},
	{"Antibiotic Ointment", "480000111018", "F2", entity.DispensingOTC, "Cream/Ointment", 18, "2027-01-05", "5.50", 32},
	{"Cimetidine 200mg", "480000111019", "B5", entity.DispensingOTC, "Tablet/Capsule", 20, "2026-09-18", "7.25", 41},
	{"Ranitidine 150mg", "480000111020", "B6", entity.DispensingRX, "Tablet/Capsule", 14, "2026-08-25", "8.99", 20},
	{"Mebendazole 100mg", "480000111021", "A6", entity.DispensingOTC, "Tablet/Capsule", 16, "2026-11-08", "4.50", 37},
	{"Albendazole 400mg", "480000111022", "A7", entity.DispensingOTC, "Tablet/Capsule", 18, "2026-10-30", "5.75", 29},
	{"Diclofenac 50mg", "480000111023", "C4", entity.DispensingRX, "Tablet/Capsule", 20, "2026-09-15", "6.25", 44},
	{"Naproxen 250mg", "480000111024", "A8", entity.DispensingOTC, "Tablet/Capsule", 22, "2026-12-01", "5.50", 33},
	{"Domperidone 10mg", "480000111025", "B7", entity.DispensingRX, "Tablet/Capsule", 14, "2026-08-18", "7.99", 25},
	{"Metoclopramide 10mg", "480000111026", "B8", entity.DispensingRX, "Tablet/Capsule", 12, "2026-07-25", "8.50", 21},
	{"Ondansetron 4mg", "480000111027", "B9", entity.DispensingRX, "Tablet/Capsule", 10, "2026-09-12", "15.75", 14},
	{"Promethazine 25mg", "480000111028", "B10", entity.DispensingRX, "Tablet/Capsule", 13, "2026-10-05", "9.25", 27},
	{"Losartan+HCTZ", "480000111029", "C5", entity.DispensingRX, "Tablet/Capsule", 11, "2026-06-20", "19.50", 16},
	{"Amlodipine 5mg", "480000111030", "C6", entity.DispensingRX, "Tablet/Capsule", 15, "2026-11-15", "10.00", 39},
	{"Atenolol 50mg", "480000111031", "C7", entity.DispensingRX, "Tablet/Capsule", 12, "2026-12-12", "8.75", 36},
	{"Verapamil 40mg", "480000111032", "C8", entity.DispensingRX, "Tablet/Capsule", 10, "2026-09-08", "12.50", 23},
	{"Simvastatin 20mg", "480000111033", "C9", entity.DispensingRX, "Tablet/Capsule", 14, "2026-10-22", "11.75", 48},
	{"Pravastatin 10mg", "480000111034", "C10", entity.DispensingRX, "Tablet/Capsule", 13, "2026-08-30", "10.50", 30},
	{"Glipizide 5mg", "480000111035", "D3", entity.DispensingRX, "Tablet/Capsule", 11, "2026-07-14", "9.99", 17},
	{"Gliclazide 80mg", "480000111036", "D4", entity.DispensingRX, "Tablet/Capsule", 12, "2026-09-25", "8.25", 40},
	{"Acarbose 50mg", "480000111037", "D5", entity.DispensingRX, "Tablet/Capsule", 10, "2026-11-03", "14.00", 13},
	{"Miglitol 25mg", "480000111038", "D6", entity.DispensingRX, "Tablet/Capsule", 9, "2026-10-18", "13.50", 28},
	{"Pioglitazone 15mg", "480000111039", "D7", entity.DispensingRX, "Tablet/Capsule", 8, "2026-08-08", "16.75", 52},
	{"Rosiglitazone 4mg", "480000111040", "D8", entity.DispensingRX, "Tablet/Capsule", 8, "2026-07-30", "17.25", 34},
	{"Albuterol Inhaler", "480000111041", "E3", entity.DispensingRX, "Medical Equipment", 15, "2026-05-15", "28.00", 43},
	{"Fluticasone Inhaler", "480000111042", "E4", entity.DispensingRX, "Medical Equipment", 12, "2026-06-10", "35.50", 20},
	{"Ipratropium Inhaler", "480000111043", "E5", entity.DispensingRX, "Medical Equipment", 10, "2026-07-20", "32.00", 38},
	{"Sertraline 50mg", "480000111044", "D9", entity.DispensingRX, "Tablet/Capsule", 14, "2026-09-05", "15.50", 25},
	{"Paroxetine 20mg", "480000111045", "D10", entity.DispensingRX, "Tablet/Capsule", 12, "2026-10-12", "14.75", 19},
	{"Citalopram 20mg", "480000111046", "D11", entity.DispensingRX, "Tablet/Capsule", 13, "2026-08-28", "13.25", 11},
	{"Escitalopram 10mg", "480000111047", "D12", entity.DispensingRX, "Tablet/Capsule", 11, "2026-11-10", "14.50", 26},
	{"Amitriptyline 25mg", "480000111048", "D13", entity.DispensingRX, "Tablet/Capsule", 12, "2026-09-22", "7.50", 33},
	{"Doxepin 10mg", "480000111049", "D14", entity.DispensingRX, "Capsule", 10, "2026-07-18", "8.99", 15},
	{"Imipramine 25mg", "480000111050", "D15", entity.DispensingRX, "Tablet/Capsule", 9, "2026-10-25", "7.75", 47},
	{"Chlorpromazine 100mg", "480000111051", "E6", entity.DispensingRX, "Tablet/Capsule", 8, "2026-08-15", "6.50", 22},
	{"Haloperidol 5mg", "480000111052", "E7", entity.DispensingRX, "Tablet/Capsule", 9, "2026-09-30", "7.99", 29},
}

// Run carga los datos de demostración. Idempotente: si la cuenta admin
// ya existe no hace nada.
func Run(ctx context.Context, deps Deps) error {
	existing, err := deps.UserRepo.GetByUsername("admin")
	if err != nil {
		return err
	}
	if existing != nil {
		deps.Log.Info().Msg("datos demo ya cargados, seed omitido")
		return nil
	}

	for _, u := range []dto.RegisterRequest{
		{Username: "admin", Password: "admin123!", Role: entity.RoleAdmin},
		{Username: "staff", Password: "staff123!", Role: entity.RoleStaff},
	} {
		if _, err := deps.AuthUC.Register(ctx, u); err != nil {
			return err
		}
	}

	for _, m := range demoCatalog {
		price, err := decimal.NewFromString(m.price)
		if err != nil {
			return err
		}
		created, err := deps.CatalogUC.Save(ctx, dto.SaveMedicineRequest{
			Name:           m.name,
			Barcode:        m.barcode,
			Shelf:          m.shelf,
			Dispensing:     m.dispensing,
			Classification: m.classification,
			ReorderLevel:   m.reorderLevel,
			ExpiryDate:     m.expiryDate,
			Price:          price,
		})
		if err != nil {
			return err
		}
		if _, err := deps.InventoryUC.ApplyAdjustment(ctx, dto.AdjustmentRequest{
			MedicineID: created.ID,
			Kind:       entity.MovementStockIn,
			Quantity:   m.stock,
			Note:       "Initial load",
		}); err != nil {
			return err
		}
	}

	deps.Log.Info().Int("medicines", len(demoCatalog)).Msg("datos demo cargados")
	return nil
}
