package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rachel-higgins/RecipeAI/internal/services/recipes/storage"
)

// PutRecipe persists a recipe record, replacing any record with the same ID.
func (s *Store) PutRecipe(ctx context.Context, record storage.RecipeRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("recipe id is required")
	}
	if strings.TrimSpace(record.Options) == "" {
		return fmt.Errorf("options is required")
	}
	if strings.TrimSpace(record.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(record.Content) == "" {
		return fmt.Errorf("content is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO recipes (
	id, options, name, content, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	options = excluded.options,
	name = excluded.name,
	content = excluded.content,
	updated_at = excluded.updated_at
`,
		record.ID,
		record.Options,
		record.Name,
		record.Content,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put recipe: %w", err)
	}
	return nil
}

// GetRecipe fetches a recipe record by ID.
func (s *Store) GetRecipe(ctx context.Context, id string) (storage.RecipeRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.RecipeRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.RecipeRecord{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.RecipeRecord{}, fmt.Errorf("recipe id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, options, name, content, created_at, updated_at
FROM recipes
WHERE id = ?
`, id)

	record, err := scanRecipeRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.RecipeRecord{}, storage.ErrNotFound
		}
		return storage.RecipeRecord{}, fmt.Errorf("get recipe: %w", err)
	}
	return record, nil
}

// ListRecipes returns all recipes ordered by creation time ascending.
func (s *Store) ListRecipes(ctx context.Context) ([]storage.RecipeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, options, name, content, created_at, updated_at
FROM recipes
ORDER BY created_at ASC, id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var records []storage.RecipeRecord
	for rows.Next() {
		var (
			record    storage.RecipeRecord
			createdAt int64
			updatedAt int64
		)
		if err := rows.Scan(
			&record.ID,
			&record.Options,
			&record.Name,
			&record.Content,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		record.UpdatedAt = fromMillis(updatedAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return records, nil
}

// DeleteRecipe removes a recipe record by ID.
func (s *Store) DeleteRecipe(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("recipe id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete recipe rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanRecipeRow(row *sql.Row) (storage.RecipeRecord, error) {
	var (
		record    storage.RecipeRecord
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(
		&record.ID,
		&record.Options,
		&record.Name,
		&record.Content,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.RecipeRecord{}, err
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}
