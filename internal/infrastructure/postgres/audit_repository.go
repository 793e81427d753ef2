package postgres

import (
	"context"
	"fmt"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación del puerto AuditRepository sobre PostgreSQL (usable con pool o tx).
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador de persistencia de auditoría. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Append persiste una entrada de auditoría.
func (r *AuditRepo) Append(entry *entity.AuditEntry) error {
	query := `
		INSERT INTO audit_log (id, actor, role, action, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Actor, entry.Role, entry.Action, entry.Detail, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// List devuelve entradas paginadas, de más reciente a más antigua.
func (r *AuditRepo) List(limit, offset int) ([]*entity.AuditEntry, error) {
	query := `
		SELECT id, actor, role, action, detail, created_at
		FROM audit_log ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1 OFFSET $2"
		args = append(args, limit, offset)
	} else if offset > 0 {
		query += " OFFSET $1"
		args = append(args, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditEntry
	for rows.Next() {
		var e entity.AuditEntry
		if err := rows.Scan(&e.ID, &e.Actor, &e.Role, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Prune conserva solo las max entradas más recientes.
func (r *AuditRepo) Prune(max int) error {
	query := `
		DELETE FROM audit_log
		WHERE seq NOT IN (SELECT seq FROM audit_log ORDER BY seq DESC LIMIT $1)`
	if _, err := r.q.Exec(context.Background(), query, max); err != nil {
		return fmt.Errorf("prune audit log: %w", err)
	}
	return nil
}
