package inventory

import "sync"

// StockLocker exclusión mutua por medicamento alrededor de las mutaciones de
// stock. El diseño original asume un único escritor; con varios terminales
// HTTP concurrentes este lock es el endurecimiento requerido para conservar
// el invariante de stock no negativo.
type StockLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStockLocker construye el locker.
func NewStockLocker() *StockLocker {
	return &StockLocker{locks: make(map[string]*sync.Mutex)}
}

// Lock toma el candado del medicamento y devuelve la función para liberarlo.
func (l *StockLocker) Lock(medicineID string) (unlock func()) {
	l.mu.Lock()
	m, ok := l.locks[medicineID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[medicineID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
