// Package telemetry records operational events alongside recipe data so
// local deployments keep an audit trail without external collectors.
package telemetry

import (
	"context"
	"time"

	"github.com/rachel-higgins/RecipeAI/internal/services/recipes/storage"
)

// Event names emitted by the recipes service.
const (
	EventRecipeGenerated = "recipe.generated"
	EventRecipeUpdated   = "recipe.updated"
	EventRecipeDeleted   = "recipe.deleted"
)

// Emitter records operational telemetry events.
type Emitter struct {
	store storage.TelemetryStore
	clock func() time.Time
}

// NewEmitter creates a new telemetry emitter.
func NewEmitter(store storage.TelemetryStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records a telemetry event. It is a no-op when the store is nil.
func (e *Emitter) Emit(ctx context.Context, event storage.TelemetryEvent) error {
	if e == nil || e.store == nil {
		return nil
	}
	if event.Timestamp.IsZero() {
		if e.clock == nil {
			event.Timestamp = time.Now().UTC()
		} else {
			event.Timestamp = e.clock().UTC()
		}
	}
	return e.store.AppendTelemetryEvent(ctx, event)
}
