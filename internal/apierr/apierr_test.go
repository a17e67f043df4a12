package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"not found", NotFound("dream plan", "abc"), http.StatusNotFound},
		{"validation", Validation("startDate", "must be an ISO date"), http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("load: %w", NotFound("quiz question", "x")), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.err); got != tt.want {
				t.Errorf("StatusOf(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("quiz question", "11111111-2222-3333-4444-555555555555")
	want := "quiz question not found: 11111111-2222-3333-4444-555555555555"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationMessage(t *testing.T) {
	err := Validation("title", "zorunlu alan")
	if err.Error() != "title: zorunlu alan" {
		t.Errorf("Error() = %q", err.Error())
	}
}
