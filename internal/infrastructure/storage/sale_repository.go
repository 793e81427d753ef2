package storage

import (
	"time"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre el snapshot store.
// Las ventas se guardan de más reciente a más antigua.
type SaleRepo struct {
	store *Store
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(store *Store) *SaleRepo {
	return &SaleRepo{store: store}
}

// Create antepone la venta al historial y persiste.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sales = append([]saleRecord{toSaleRecord(sale)}, r.store.sales...)
	return r.store.save(keySales, r.store.sales)
}

// List devuelve ventas paginadas, de más reciente a más antigua.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if offset >= len(r.store.sales) {
		return []*entity.Sale{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(r.store.sales) {
		end = len(r.store.sales)
	}
	out := make([]*entity.Sale, 0, end-offset)
	for _, s := range r.store.sales[offset:end] {
		out = append(out, s.toEntity())
	}
	return out, nil
}

// ListBetween devuelve las ventas con CreatedAt en [from, to).
// from/to en cero significan sin cota por ese lado.
func (r *SaleRepo) ListBetween(from, to time.Time) ([]*entity.Sale, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.Sale, 0)
	for _, s := range r.store.sales {
		if !from.IsZero() && s.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !s.CreatedAt.Before(to) {
			continue
		}
		out = append(out, s.toEntity())
	}
	return out, nil
}
