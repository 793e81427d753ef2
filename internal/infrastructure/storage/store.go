// Package storage implementa los puertos de persistencia sobre snapshots
// JSON en disco: un archivo por store (catálogo, inventario, ventas,
// auditoría, usuarios). Todo el estado vive en memoria; cada
// mutación persiste el store completo de forma durable (archivo temporal +
// rename) antes de retornar.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Claves de store; cada una corresponde a un archivo <clave>.json en DataDir.
const (
	keyMedicines = "medicines"
	keyInventory = "inventory"
	keySales     = "sales"
	keyAudit     = "audit"
	keyUsers     = "users"
)

// Store estado en memoria + snapshots JSON por clave.
// Los repositorios de este paquete comparten una instancia y serializan el
// acceso con un mutex único: el motor asume un escritor a la vez y añade su
// propio candado por medicamento por encima de este nivel.
type Store struct {
	mu  sync.Mutex
	dir string

	medicines []medicineRecord
	ledgers   []ledgerRecord
	sales     []saleRecord
	audit     []auditRecord
	users     []userRecord
}

// Open carga (o inicializa vacíos) los snapshots del directorio dado.
// Load devuelve siempre el último snapshot guardado.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	s := &Store{dir: dir}
	if err := s.load(keyMedicines, &s.medicines); err != nil {
		return nil, err
	}
	if err := s.load(keyInventory, &s.ledgers); err != nil {
		return nil, err
	}
	if err := s.load(keySales, &s.sales); err != nil {
		return nil, err
	}
	if err := s.load(keyAudit, &s.audit); err != nil {
		return nil, err
	}
	if err := s.load(keyUsers, &s.users); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) load(key string, out interface{}) error {
	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil // primer arranque: store vacío
	}
	if err != nil {
		return fmt.Errorf("leer store %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decodificar store %s: %w", key, err)
	}
	return nil
}

// save persiste el snapshot completo de una clave: escribe a un archivo
// temporal, sincroniza y renombra. Un crash a mitad de escritura nunca deja
// un snapshot corrupto.
func (s *Store) save(key string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar store %s: %w", key, err)
	}
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal para store %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir store %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sincronizar store %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal de store %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("reemplazar store %s: %w", key, err)
	}
	return nil
}
