package audit_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/audit"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/identity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/infrastructure/storage"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/pkg/logger"
)

func newRecorder(t *testing.T) *audit.Recorder {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return audit.NewRecorder(storage.NewAuditRepository(store), identity.ContextProvider{}, log)
}

// Con sesión la entrada se firma con el actor; sin sesión queda "System".
func TestRecord_FirmaDelActor(t *testing.T) {
	rec := newRecorder(t)

	ctx := identity.WithActor(context.Background(), entity.Actor{Name: "maria", Role: entity.RoleStaff})
	rec.Record(ctx, "POS Sale", "Paracetamol x2")
	rec.Record(context.Background(), "Seed Data", "Demo data initialized")

	entries, err := rec.List(10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Más reciente primero.
	assert.Equal(t, "System", entries[0].Actor, "sin sesión el actor es System")
	assert.Equal(t, "Seed Data", entries[0].Action)
	assert.Equal(t, "maria", entries[1].Actor)
	assert.Equal(t, entity.RoleStaff, entries[1].Role)
	assert.Equal(t, "Paracetamol x2", entries[1].Detail)
}

// El historial se poda al tope: sobreviven solo las entradas más recientes.
func TestRecord_PodaAlTope(t *testing.T) {
	rec := newRecorder(t)
	ctx := context.Background()

	total := entity.AuditMaxEntries + 25
	for i := 0; i < total; i++ {
		rec.Record(ctx, "Inventory Movement", fmt.Sprintf("mov %d", i))
	}

	entries, err := rec.List(0, 0)
	require.NoError(t, err)
	assert.Len(t, entries, entity.AuditMaxEntries, "el historial no supera el tope")
	assert.Equal(t, fmt.Sprintf("mov %d", total-1), entries[0].Detail,
		"la entrada más reciente sobrevive")
	assert.Equal(t, fmt.Sprintf("mov %d", total-entity.AuditMaxEntries), entries[len(entries)-1].Detail,
		"las más antiguas se descartan primero")
}
