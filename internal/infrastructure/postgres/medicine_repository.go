package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
)

var _ repository.MedicineRepository = (*MedicineRepo)(nil)

// MedicineRepo implementación del puerto MedicineRepository sobre PostgreSQL (usable con pool o tx).
type MedicineRepo struct {
	q Querier
}

// NewMedicineRepository construye el adaptador de persistencia del catálogo. Pasar pool o tx (Querier).
func NewMedicineRepository(q Querier) *MedicineRepo {
	return &MedicineRepo{q: q}
}

// Create persiste un nuevo medicamento. El barcode es único.
func (r *MedicineRepo) Create(medicine *entity.Medicine) error {
	query := `
		INSERT INTO medicines (id, name, barcode, shelf, dispensing, classification, reorder_level, expiry_date, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		medicine.ID, medicine.Name, medicine.Barcode, medicine.Shelf, medicine.Dispensing,
		medicine.Classification, medicine.ReorderLevel, medicine.ExpiryDate, medicine.Price,
		medicine.CreatedAt, medicine.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateBarcode
		}
		return fmt.Errorf("insert medicine: %w", err)
	}
	return nil
}

// GetByID obtiene un medicamento por ID, o (nil, nil) si no existe.
func (r *MedicineRepo) GetByID(id string) (*entity.Medicine, error) {
	return r.getOne(`SELECT id, name, barcode, shelf, dispensing, classification, reorder_level, expiry_date, price, created_at, updated_at
		FROM medicines WHERE id = $1`, id)
}

// GetByBarcode obtiene un medicamento por código de barras, o (nil, nil) si no existe.
func (r *MedicineRepo) GetByBarcode(barcode string) (*entity.Medicine, error) {
	return r.getOne(`SELECT id, name, barcode, shelf, dispensing, classification, reorder_level, expiry_date, price, created_at, updated_at
		FROM medicines WHERE barcode = $1`, barcode)
}

func (r *MedicineRepo) getOne(query string, arg any) (*entity.Medicine, error) {
	var m entity.Medicine
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&m.ID, &m.Name, &m.Barcode, &m.Shelf, &m.Dispensing, &m.Classification,
		&m.ReorderLevel, &m.ExpiryDate, &m.Price, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicine: %w", err)
	}
	return &m, nil
}

// Update actualiza un medicamento existente.
func (r *MedicineRepo) Update(medicine *entity.Medicine) error {
	query := `
		UPDATE medicines SET name = $2, barcode = $3, shelf = $4, dispensing = $5, classification = $6,
			reorder_level = $7, expiry_date = $8, price = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		medicine.ID, medicine.Name, medicine.Barcode, medicine.Shelf, medicine.Dispensing,
		medicine.Classification, medicine.ReorderLevel, medicine.ExpiryDate, medicine.Price,
		medicine.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateBarcode
		}
		return fmt.Errorf("update medicine: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve el catálogo completo ordenado por nombre.
func (r *MedicineRepo) List() ([]*entity.Medicine, error) {
	query := `
		SELECT id, name, barcode, shelf, dispensing, classification, reorder_level, expiry_date, price, created_at, updated_at
		FROM medicines ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	defer rows.Close()
	var list []*entity.Medicine
	for rows.Next() {
		var m entity.Medicine
		if err := rows.Scan(&m.ID, &m.Name, &m.Barcode, &m.Shelf, &m.Dispensing, &m.Classification,
			&m.ReorderLevel, &m.ExpiryDate, &m.Price, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan medicine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina un medicamento por ID. Idempotente: no falla si no existe.
func (r *MedicineRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medicine: %w", err)
	}
	return nil
}
