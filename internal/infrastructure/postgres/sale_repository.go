package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta. Las ventas son inmutables: solo inserción.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, medicine_id, medicine_name, quantity, total, cashier, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.MedicineID, sale.MedicineName, sale.Quantity, sale.Total,
		sale.Cashier, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// List devuelve ventas paginadas, de más reciente a más antigua.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, medicine_id, medicine_name, quantity, total, cashier, created_at
		FROM sales ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1 OFFSET $2"
		args = append(args, limit, offset)
	} else if offset > 0 {
		query += " OFFSET $1"
		args = append(args, offset)
	}
	return r.queryList(query, args...)
}

// ListBetween devuelve las ventas con CreatedAt en [from, to).
// Un extremo en cero significa sin límite por ese lado.
func (r *SaleRepo) ListBetween(from, to time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT id, medicine_id, medicine_name, quantity, total, cashier, created_at
		FROM sales WHERE 1=1`
	args := []any{}
	pos := 1
	if !from.IsZero() {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, from)
		pos++
	}
	if !to.IsZero() {
		query += fmt.Sprintf(" AND created_at < $%d", pos)
		args = append(args, to)
	}
	query += " ORDER BY created_at DESC"
	return r.queryList(query, args...)
}

func (r *SaleRepo) queryList(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.MedicineID, &s.MedicineName, &s.Quantity, &s.Total, &s.Cashier, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
