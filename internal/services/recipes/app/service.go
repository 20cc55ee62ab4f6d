// Package app implements the recipes service: generation, listing, viewing,
// editing, and deletion of recipes.
package app

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/rachel-higgins/RecipeAI/internal/errors"
	"github.com/rachel-higgins/RecipeAI/internal/platform/id"
	"github.com/rachel-higgins/RecipeAI/internal/services/ai"
	"github.com/rachel-higgins/RecipeAI/internal/services/recipes/recipe"
	"github.com/rachel-higgins/RecipeAI/internal/services/recipes/storage"
	"github.com/rachel-higgins/RecipeAI/internal/telemetry"
)

const tracerName = "recipeai/recipes"

// Service coordinates recipe generation and persistence.
type Service struct {
	store     storage.RecipeStore
	generator ai.Client
	emitter   *telemetry.Emitter
	clock     func() time.Time
	newID     func() (string, error)
}

// NewService builds a recipes service.
func NewService(store storage.RecipeStore, generator ai.Client, emitter *telemetry.Emitter) *Service {
	return &Service{
		store:     store,
		generator: generator,
		emitter:   emitter,
		clock:     time.Now,
		newID:     id.NewID,
	}
}

// GenerateRequest carries the creation-form inputs.
type GenerateRequest struct {
	Criteria recipe.Criteria
	// Name is optional; blank names are autogenerated from the criteria.
	Name string
}

// Generate produces a recipe from the request criteria and persists it.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (recipe.Recipe, error) {
	ctx, span := tracer().Start(ctx, "recipes.Generate")
	defer span.End()

	if err := req.Criteria.Validate(); err != nil {
		return recipe.Recipe{}, err
	}

	content, err := s.generator.Complete(ctx, ai.Request{
		Prompt:      recipe.BuildPrompt(req.Criteria),
		Temperature: ai.DefaultTemperature,
		MaxTokens:   ai.DefaultMaxTokens,
	})
	if err != nil {
		if apperrors.GetCode(err) != apperrors.CodeUnknown {
			return recipe.Recipe{}, err
		}
		return recipe.Recipe{}, apperrors.Wrap(apperrors.CodeGenerationFailed, "generate recipe content", err)
	}

	recipeID, err := s.newID()
	if err != nil {
		return recipe.Recipe{}, apperrors.Wrap(apperrors.CodeStorageFailure, "allocate recipe id", err)
	}
	span.SetAttributes(attribute.String("recipe.id", recipeID))

	now := s.clock().UTC()
	created := recipe.Recipe{
		ID:        recipeID,
		Options:   req.Criteria.Options(),
		Name:      req.Criteria.ResolveName(req.Name),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.PutRecipe(ctx, toRecord(created)); err != nil {
		return recipe.Recipe{}, apperrors.Wrap(apperrors.CodeStorageFailure, "persist recipe", err)
	}

	s.emit(ctx, telemetry.EventRecipeGenerated, created.ID, created.Options)
	return created, nil
}

// List returns all recipes ordered by creation time ascending.
func (s *Service) List(ctx context.Context) ([]recipe.Recipe, error) {
	ctx, span := tracer().Start(ctx, "recipes.List")
	defer span.End()

	records, err := s.store.ListRecipes(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorageFailure, "list recipes", err)
	}
	recipes := make([]recipe.Recipe, 0, len(records))
	for _, record := range records {
		recipes = append(recipes, fromRecord(record))
	}
	return recipes, nil
}

// Get fetches a single recipe by ID.
func (s *Service) Get(ctx context.Context, recipeID string) (recipe.Recipe, error) {
	ctx, span := tracer().Start(ctx, "recipes.Get", trace.WithAttributes(attribute.String("recipe.id", recipeID)))
	defer span.End()

	if recipeID == "" {
		return recipe.Recipe{}, apperrors.New(apperrors.CodeRecipeEmptyID, "recipe id is required")
	}
	record, err := s.store.GetRecipe(ctx, recipeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return recipe.Recipe{}, apperrors.WithMetadata(apperrors.CodeNotFound, "recipe not found", map[string]string{"ID": recipeID})
		}
		return recipe.Recipe{}, apperrors.Wrap(apperrors.CodeStorageFailure, "get recipe", err)
	}
	return fromRecord(record), nil
}

// UpdateContent replaces a recipe's content, preserving its name and options.
func (s *Service) UpdateContent(ctx context.Context, recipeID, content string) (recipe.Recipe, error) {
	ctx, span := tracer().Start(ctx, "recipes.UpdateContent", trace.WithAttributes(attribute.String("recipe.id", recipeID)))
	defer span.End()

	if content == "" {
		return recipe.Recipe{}, apperrors.New(apperrors.CodeRecipeEmptyContent, "content is required")
	}
	current, err := s.Get(ctx, recipeID)
	if err != nil {
		return recipe.Recipe{}, err
	}

	current.Content = content
	current.UpdatedAt = s.clock().UTC()
	if err := s.store.PutRecipe(ctx, toRecord(current)); err != nil {
		return recipe.Recipe{}, apperrors.Wrap(apperrors.CodeStorageFailure, "update recipe", err)
	}

	s.emit(ctx, telemetry.EventRecipeUpdated, current.ID, "")
	return current, nil
}

// Delete removes a recipe by ID.
func (s *Service) Delete(ctx context.Context, recipeID string) error {
	ctx, span := tracer().Start(ctx, "recipes.Delete", trace.WithAttributes(attribute.String("recipe.id", recipeID)))
	defer span.End()

	if recipeID == "" {
		return apperrors.New(apperrors.CodeRecipeEmptyID, "recipe id is required")
	}
	if err := s.store.DeleteRecipe(ctx, recipeID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.WithMetadata(apperrors.CodeNotFound, "recipe not found", map[string]string{"ID": recipeID})
		}
		return apperrors.Wrap(apperrors.CodeStorageFailure, "delete recipe", err)
	}

	s.emit(ctx, telemetry.EventRecipeDeleted, recipeID, "")
	return nil
}

// emit records telemetry on a best-effort basis; event failures never fail
// the user-facing operation.
func (s *Service) emit(ctx context.Context, name, recipeID, detail string) {
	_ = s.emitter.Emit(ctx, storage.TelemetryEvent{
		Name:     name,
		RecipeID: recipeID,
		Detail:   detail,
	})
}

func tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

func toRecord(value recipe.Recipe) storage.RecipeRecord {
	return storage.RecipeRecord{
		ID:        value.ID,
		Options:   value.Options,
		Name:      value.Name,
		Content:   value.Content,
		CreatedAt: value.CreatedAt,
		UpdatedAt: value.UpdatedAt,
	}
}

func fromRecord(record storage.RecipeRecord) recipe.Recipe {
	return recipe.Recipe{
		ID:        record.ID,
		Options:   record.Options,
		Name:      record.Name,
		Content:   record.Content,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
