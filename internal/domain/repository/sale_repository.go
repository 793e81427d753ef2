package repository

import (
	"time"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
// Las ventas nunca se actualizan ni se borran: solo Create y lecturas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// List devuelve las ventas de más reciente a más antigua.
	List(limit, offset int) ([]*entity.Sale, error)
	// ListBetween devuelve las ventas con CreatedAt en [from, to).
	ListBetween(from, to time.Time) ([]*entity.Sale, error)
}
