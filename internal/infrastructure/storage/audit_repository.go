package storage

import (
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación del puerto AuditRepository sobre el snapshot store.
// Entradas de más reciente a más antigua.
type AuditRepo struct {
	store *Store
}

// NewAuditRepository construye el adaptador de persistencia de auditoría.
func NewAuditRepository(store *Store) *AuditRepo {
	return &AuditRepo{store: store}
}

// Append antepone la entrada y persiste.
func (r *AuditRepo) Append(entry *entity.AuditEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.audit = append([]auditRecord{toAuditRecord(entry)}, r.store.audit...)
	return r.store.save(keyAudit, r.store.audit)
}

// List devuelve entradas paginadas, de más reciente a más antigua.
func (r *AuditRepo) List(limit, offset int) ([]*entity.AuditEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if offset >= len(r.store.audit) {
		return []*entity.AuditEntry{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(r.store.audit) {
		end = len(r.store.audit)
	}
	out := make([]*entity.AuditEntry, 0, end-offset)
	for _, e := range r.store.audit[offset:end] {
		out = append(out, e.toEntity())
	}
	return out, nil
}

// Prune conserva solo las max entradas más recientes.
func (r *AuditRepo) Prune(max int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if len(r.store.audit) <= max {
		return nil
	}
	r.store.audit = r.store.audit[:max]
	return r.store.save(keyAudit, r.store.audit)
}
