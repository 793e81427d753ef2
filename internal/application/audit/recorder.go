package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/identity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/pkg/logger"
)

// systemActor actor usado cuando la operación no tiene sesión (seed, arranque).
const systemActor = "System"

// Sink recibe eventos de auditoría. Fire-and-forget: registrar nunca
// falla la operación que lo origina y el core no lee auditoría de vuelta.
type Sink interface {
	Record(ctx context.Context, action, detail string)
}

// Recorder implementación de Sink sobre AuditRepository.
// Firma cada entrada con el actor actual y poda el historial al tope
// de entity.AuditMaxEntries (las más antiguas se descartan primero).
type Recorder struct {
	repo     repository.AuditRepository
	provider identity.Provider
	log      *logger.Logger
}

var _ Sink = (*Recorder)(nil)

// NewRecorder construye el recorder de auditoría.
func NewRecorder(repo repository.AuditRepository, provider identity.Provider, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, provider: provider, log: log}
}

// Record agrega una entrada de auditoría. Los errores de persistencia se
// loguean y se descartan: la auditoría no bloquea la operación de negocio.
func (r *Recorder) Record(ctx context.Context, action, detail string) {
	actor, ok := r.provider.CurrentActor(ctx)
	if !ok {
		actor = entity.Actor{Name: systemActor, Role: systemActor}
	}
	entry := &entity.AuditEntry{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Actor:     actor.Name,
		Role:      actor.Role,
		Action:    action,
		Detail:    detail,
	}
	if err := r.repo.Append(entry); err != nil {
		r.log.Error().Err(err).Str("action", action).Msg("registrar auditoría")
		return
	}
	if err := r.repo.Prune(entity.AuditMaxEntries); err != nil {
		r.log.Error().Err(err).Msg("podar auditoría")
	}
}

// List devuelve las entradas más recientes para la vista del audit trail.
func (r *Recorder) List(limit, offset int) ([]*entity.AuditEntry, error) {
	return r.repo.List(limit, offset)
}
