package identity

import (
	"context"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
)

// Provider resuelve el actor actual (nombre y rol) de una operación.
// Lo consumen el motor de transacciones para firmar ventas y el registro
// de auditoría para firmar entradas.
type Provider interface {
	CurrentActor(ctx context.Context) (entity.Actor, bool)
}

type ctxKey struct{}

// WithActor devuelve un contexto con el actor asociado.
// El middleware de auth lo invoca con los claims del JWT.
func WithActor(ctx context.Context, actor entity.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

// ContextProvider implementación de Provider basada en el contexto de la petición.
type ContextProvider struct{}

// CurrentActor devuelve el actor guardado en el contexto, si existe.
func (ContextProvider) CurrentActor(ctx context.Context) (entity.Actor, bool) {
	actor, ok := ctx.Value(ctxKey{}).(entity.Actor)
	if !ok || actor.Name == "" {
		return entity.Actor{}, false
	}
	return actor, true
}
