package repository

import "github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"

// AuditRepository define el puerto de persistencia para el registro de auditoría.
type AuditRepository interface {
	Append(entry *entity.AuditEntry) error
	// List devuelve las entradas de más reciente a más antigua.
	List(limit, offset int) ([]*entity.AuditEntry, error)
	// Prune conserva solo las max entradas más recientes.
	Prune(max int) error
}
