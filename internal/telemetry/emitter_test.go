package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/rachel-higgins/RecipeAI/internal/services/recipes/storage"
)

type capturingStore struct {
	events []storage.TelemetryEvent
}

func (s *capturingStore) AppendTelemetryEvent(_ context.Context, event storage.TelemetryEvent) error {
	s.events = append(s.events, event)
	return nil
}

func TestEmitStampsTimestamp(t *testing.T) {
	store := &capturingStore{}
	emitter := NewEmitter(store)
	fixed := time.Date(2026, time.August, 12, 21, 0, 0, 0, time.UTC)
	emitter.clock = func() time.Time { return fixed }

	err := emitter.Emit(context.Background(), storage.TelemetryEvent{
		Name:     EventRecipeGenerated,
		RecipeID: "rec-1",
	})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if len(store.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(store.events))
	}
	if !store.events[0].Timestamp.Equal(fixed) {
		t.Fatalf("timestamp = %v, want %v", store.events[0].Timestamp, fixed)
	}
}

func TestEmitKeepsExplicitTimestamp(t *testing.T) {
	store := &capturingStore{}
	emitter := NewEmitter(store)
	explicit := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	err := emitter.Emit(context.Background(), storage.TelemetryEvent{
		Name:      EventRecipeDeleted,
		Timestamp: explicit,
	})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if !store.events[0].Timestamp.Equal(explicit) {
		t.Fatalf("timestamp = %v, want %v", store.events[0].Timestamp, explicit)
	}
}

func TestEmitNoopWithoutStore(t *testing.T) {
	var emitter *Emitter
	if err := emitter.Emit(context.Background(), storage.TelemetryEvent{Name: EventRecipeUpdated}); err != nil {
		t.Fatalf("nil emitter should be a no-op, got %v", err)
	}
	if err := NewEmitter(nil).Emit(context.Background(), storage.TelemetryEvent{Name: EventRecipeUpdated}); err != nil {
		t.Fatalf("nil store should be a no-op, got %v", err)
	}
}
