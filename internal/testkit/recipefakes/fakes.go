// Package recipefakes provides in-memory fakes for recipes-service tests.
package recipefakes

import (
	"context"
	"sort"

	"github.com/rachel-higgins/RecipeAI/internal/services/ai"
	"github.com/rachel-higgins/RecipeAI/internal/services/recipes/storage"
)

// RecipeStore is a lightweight in-memory RecipeStore fake for tests.
type RecipeStore struct {
	Recipes map[string]storage.RecipeRecord

	// PutErr, ListErr, and DeleteErr force failures when set.
	PutErr    error
	ListErr   error
	DeleteErr error
}

// NewRecipeStore constructs a RecipeStore fake with initialized state maps.
func NewRecipeStore() *RecipeStore {
	return &RecipeStore{Recipes: make(map[string]storage.RecipeRecord)}
}

func (s *RecipeStore) PutRecipe(_ context.Context, record storage.RecipeRecord) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	s.Recipes[record.ID] = record
	return nil
}

func (s *RecipeStore) GetRecipe(_ context.Context, id string) (storage.RecipeRecord, error) {
	record, ok := s.Recipes[id]
	if !ok {
		return storage.RecipeRecord{}, storage.ErrNotFound
	}
	return record, nil
}

func (s *RecipeStore) ListRecipes(_ context.Context) ([]storage.RecipeRecord, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	records := make([]storage.RecipeRecord, 0, len(s.Recipes))
	for _, record := range s.Recipes {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

func (s *RecipeStore) DeleteRecipe(_ context.Context, id string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	if _, ok := s.Recipes[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.Recipes, id)
	return nil
}

// TelemetryStore is an in-memory TelemetryStore fake for tests.
type TelemetryStore struct {
	Events []storage.TelemetryEvent
}

// NewTelemetryStore constructs an empty TelemetryStore fake.
func NewTelemetryStore() *TelemetryStore {
	return &TelemetryStore{}
}

func (s *TelemetryStore) AppendTelemetryEvent(_ context.Context, event storage.TelemetryEvent) error {
	s.Events = append(s.Events, event)
	return nil
}

// Generator is a canned ai.Client fake for tests.
type Generator struct {
	Content string
	Err     error

	// Prompts records every prompt the fake received.
	Prompts []string
}

var _ ai.Client = (*Generator)(nil)

func (g *Generator) Complete(_ context.Context, req ai.Request) (string, error) {
	g.Prompts = append(g.Prompts, req.Prompt)
	if g.Err != nil {
		return "", g.Err
	}
	return g.Content, nil
}
