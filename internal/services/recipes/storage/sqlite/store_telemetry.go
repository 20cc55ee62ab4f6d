package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rachel-higgins/RecipeAI/internal/services/recipes/storage"
)

// AppendTelemetryEvent records one operational event.
func (s *Store) AppendTelemetryEvent(ctx context.Context, event storage.TelemetryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(event.Name) == "" {
		return fmt.Errorf("event name is required")
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO telemetry_events (name, recipe_id, detail, timestamp)
VALUES (?, ?, ?, ?)
`,
		event.Name,
		event.RecipeID,
		event.Detail,
		toMillis(event.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("append telemetry event: %w", err)
	}
	return nil
}
