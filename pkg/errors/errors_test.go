package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "resource not found",
			},
			expected: "NOT_FOUND: resource not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "internal error",
				Err:     errors.New("database connection failed"),
			},
			expected: "INTERNAL_ERROR: internal error (caused by: database connection failed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := Internal("wrapped", originalErr)

	if unwrapped := errors.Unwrap(appErr); unwrapped != originalErr {
		t.Errorf("Unwrap() should return original error")
	}
}

func TestNotFoundWithID(t *testing.T) {
	err := NotFoundWithID("Listing", "6a1f6f1e-0000-0000-0000-000000000000")

	if err.Code != CodeNotFound {
		t.Errorf("expected code %s, got %s", CodeNotFound, err.Code)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
	if err.Message != "Listing not found" {
		t.Errorf("expected message 'Listing not found', got %s", err.Message)
	}
	if err.Details["resource"] != "Listing" {
		t.Errorf("expected resource detail 'Listing', got %v", err.Details["resource"])
	}
}

func TestValidation(t *testing.T) {
	err := Validation("Invalid booking input", map[string]any{
		"end_date": "end_date must be after start_date",
	})

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.StatusCode() != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode() = %d, want %d", err.StatusCode(), http.StatusUnprocessableEntity)
	}
	if err.Details["end_date"] == nil {
		t.Errorf("expected field detail for end_date")
	}
}

func TestConflict(t *testing.T) {
	cause := errors.New("FOREIGN KEY constraint failed")
	err := Conflict("Booking references a missing listing", cause)

	if err.Code != CodeConflict {
		t.Errorf("expected code %s, got %s", CodeConflict, err.Code)
	}
	if err.StatusCode() != http.StatusConflict {
		t.Errorf("StatusCode() = %d, want %d", err.StatusCode(), http.StatusConflict)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected conflict error to wrap its cause")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("Review")
	if got := AsAppError(appErr); got != appErr {
		t.Errorf("AsAppError should return the same *AppError")
	}

	plain := errors.New("boom")
	wrapped := AsAppError(plain)
	if wrapped.Code != CodeInternal {
		t.Errorf("expected plain errors to map to %s, got %s", CodeInternal, wrapped.Code)
	}
	if wrapped.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, wrapped.HTTPStatus)
	}
}
