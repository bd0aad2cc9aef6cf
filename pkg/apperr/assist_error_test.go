package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMissingField(t *testing.T) {
	err := MissingField("email")

	if err.Status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.Status)
	}
	if err.Message != "missing required field: email" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Details["field"] != "email" {
		t.Errorf("expected field detail, got %v", err.Details)
	}
}

func TestAsAppErrorUnwrapsWrapped(t *testing.T) {
	inner := InvalidInput("tone", "unknown value")
	wrapped := fmt.Errorf("draft: %w", inner)

	got := AsAppError(wrapped)
	if got != inner {
		t.Errorf("expected original AppError back, got %v", got)
	}
	if got.HTTPStatus() != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", got.HTTPStatus())
	}
}

func TestAsAppErrorDefaultsToInternal(t *testing.T) {
	plain := errors.New("stub exploded")

	got := AsAppError(plain)
	if got.Status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", got.Status)
	}
	if !errors.Is(got, plain) {
		t.Error("expected the plain error to be wrapped")
	}
}

func TestBadRequest(t *testing.T) {
	err := BadRequest("invalid request body")

	if err.Code != CodeBadRequest || err.Status != http.StatusBadRequest {
		t.Errorf("unexpected error %+v", err)
	}
	if err.Error() != "[BAD_REQUEST] invalid request body" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
