// Package errors provides structured domain errors with stable codes and
// HTTP status mapping for the web surface.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Recipe input errors
	CodeRecipeEmptyProtein           Code = "RECIPE_EMPTY_PROTEIN"
	CodeRecipeEmptySpecialIngredient Code = "RECIPE_EMPTY_SPECIAL_INGREDIENT"
	CodeRecipeEmptyRegion            Code = "RECIPE_EMPTY_REGION"
	CodeRecipeEmptyID                Code = "RECIPE_EMPTY_ID"
	CodeRecipeEmptyContent           Code = "RECIPE_EMPTY_CONTENT"

	// Generation errors
	CodeGenerationFailed Code = "GENERATION_FAILED"
	CodeGenerationEmpty  Code = "GENERATION_EMPTY"

	// Storage errors
	CodeNotFound       Code = "NOT_FOUND"
	CodeStorageFailure Code = "STORAGE_FAILURE"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - validation failures, bad input
	case CodeRecipeEmptyProtein,
		CodeRecipeEmptySpecialIngredient,
		CodeRecipeEmptyRegion,
		CodeRecipeEmptyID,
		CodeRecipeEmptyContent:
		return http.StatusBadRequest

	// Not found - resource doesn't exist
	case CodeNotFound:
		return http.StatusNotFound

	// The original app reported generation and storage failures as 500s
	// with a user-facing description; keep that contract.
	case CodeGenerationFailed,
		CodeGenerationEmpty,
		CodeStorageFailure:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}
