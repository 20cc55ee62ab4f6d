package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestGetCodeFromDomainError(t *testing.T) {
	err := New(CodeNotFound, "recipe missing")
	if GetCode(err) != CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %s", GetCode(err))
	}
	if !IsCode(err, CodeNotFound) {
		t.Fatal("expected IsCode to match")
	}
}

func TestGetCodeFromWrappedError(t *testing.T) {
	inner := New(CodeGenerationFailed, "provider call failed")
	wrapped := fmt.Errorf("generate recipe: %w", inner)
	if GetCode(wrapped) != CodeGenerationFailed {
		t.Fatalf("expected GENERATION_FAILED through wrapping, got %s", GetCode(wrapped))
	}
}

func TestGetCodeFromPlainError(t *testing.T) {
	if GetCode(stderrors.New("boom")) != CodeUnknown {
		t.Fatal("expected UNKNOWN for plain error")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(CodeStorageFailure, "persist recipe", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause to unwrap")
	}
	if GetCode(err) != CodeStorageFailure {
		t.Fatalf("expected STORAGE_FAILURE, got %s", GetCode(err))
	}
}

func TestWithMetadata(t *testing.T) {
	err := WithMetadata(CodeNotFound, "recipe not found", map[string]string{"ID": "abc"})
	meta := GetMetadata(err)
	if meta["ID"] != "abc" {
		t.Fatalf("expected metadata ID, got %v", meta)
	}
	if GetMetadata(stderrors.New("plain")) != nil {
		t.Fatal("expected nil metadata for plain error")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeRecipeEmptyProtein, http.StatusBadRequest},
		{CodeRecipeEmptySpecialIngredient, http.StatusBadRequest},
		{CodeRecipeEmptyRegion, http.StatusBadRequest},
		{CodeRecipeEmptyID, http.StatusBadRequest},
		{CodeRecipeEmptyContent, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeGenerationFailed, http.StatusInternalServerError},
		{CodeGenerationEmpty, http.StatusInternalServerError},
		{CodeStorageFailure, http.StatusInternalServerError},
		{CodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Fatalf("code %s: expected %d, got %d", tc.code, tc.want, got)
		}
	}

	if HTTPStatus(stderrors.New("plain")) != http.StatusInternalServerError {
		t.Fatal("expected 500 for plain error")
	}
}
