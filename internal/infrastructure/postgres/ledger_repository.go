package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del puerto LedgerRepository sobre PostgreSQL.
// Usa el pool directamente porque RecordMovement necesita su propia transacción.
type LedgerRepo struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository construye el adaptador de persistencia del libro de inventario.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Create persiste un registro de inventario nuevo (stock inicial, sin historial).
func (r *LedgerRepo) Create(record *entity.LedgerRecord) error {
	query := `
		INSERT INTO inventory (id, medicine_id, stock, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		record.ID, record.MedicineID, record.Stock, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory record: %w", err)
	}
	return nil
}

// GetByMedicineID obtiene el registro con su historial (de más reciente a más antiguo),
// o (nil, nil) si no existe.
func (r *LedgerRepo) GetByMedicineID(medicineID string) (*entity.LedgerRecord, error) {
	var rec entity.LedgerRecord
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, medicine_id, stock, updated_at FROM inventory WHERE medicine_id = $1`,
		medicineID,
	).Scan(&rec.ID, &rec.MedicineID, &rec.Stock, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory record: %w", err)
	}
	history, err := r.listMovements(medicineID)
	if err != nil {
		return nil, err
	}
	rec.History = history
	return &rec, nil
}

func (r *LedgerRepo) listMovements(medicineID string) ([]entity.Movement, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, kind, quantity, note, created_at
		 FROM inventory_movements WHERE medicine_id = $1 ORDER BY seq DESC`,
		medicineID,
	)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var history []entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.Kind, &m.Quantity, &m.Note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		history = append(history, m)
	}
	return history, rows.Err()
}

// RecordMovement persiste atómicamente el nuevo stock y el movimiento al frente del historial.
func (r *LedgerRepo) RecordMovement(medicineID string, movement entity.Movement, newStock int) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx,
		`UPDATE inventory SET stock = $2, updated_at = $3 WHERE medicine_id = $1`,
		medicineID, newStock, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO inventory_movements (id, medicine_id, kind, quantity, note, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		movement.ID, medicineID, movement.Kind, movement.Quantity, movement.Note, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List devuelve todos los registros de inventario con su historial.
func (r *LedgerRepo) List() ([]*entity.LedgerRecord, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, medicine_id, stock, updated_at FROM inventory ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerRecord
	for rows.Next() {
		var rec entity.LedgerRecord
		if err := rows.Scan(&rec.ID, &rec.MedicineID, &rec.Stock, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory record: %w", err)
		}
		list = append(list, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, rec := range list {
		history, err := r.listMovements(rec.MedicineID)
		if err != nil {
			return nil, err
		}
		rec.History = history
	}
	return list, nil
}

// DeleteByMedicineID elimina el registro y su historial. Idempotente.
func (r *LedgerRepo) DeleteByMedicineID(medicineID string) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM inventory_movements WHERE medicine_id = $1`, medicineID); err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM inventory WHERE medicine_id = $1`, medicineID); err != nil {
		return fmt.Errorf("delete inventory record: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
