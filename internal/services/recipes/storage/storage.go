package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// RecipeRecord stores a persisted recipe.
type RecipeRecord struct {
	ID        string
	Options   string
	Name      string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecipeStore persists recipe records.
type RecipeStore interface {
	PutRecipe(ctx context.Context, record RecipeRecord) error
	GetRecipe(ctx context.Context, id string) (RecipeRecord, error)
	// ListRecipes returns all recipes ordered by creation time ascending.
	ListRecipes(ctx context.Context) ([]RecipeRecord, error)
	DeleteRecipe(ctx context.Context, id string) error
}

// TelemetryEvent records one operational event.
type TelemetryEvent struct {
	Name      string
	RecipeID  string
	Detail    string
	Timestamp time.Time
}

// TelemetryStore appends operational telemetry events.
type TelemetryStore interface {
	AppendTelemetryEvent(ctx context.Context, event TelemetryEvent) error
}
