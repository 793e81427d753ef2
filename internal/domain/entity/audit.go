package entity

import "time"

// AuditMaxEntries tope del historial de auditoría: se conservan las 500
// entradas más recientes y se descartan las más antiguas.
const AuditMaxEntries = 500

// Actor identifica a quien ejecuta una operación (nombre y rol).
type Actor struct {
	Name string
	Role string
}

// AuditEntry es una entrada del registro de auditoría (append-only).
type AuditEntry struct {
	ID        string
	CreatedAt time.Time
	Actor     string
	Role      string
	Action    string
	Detail    string
}
