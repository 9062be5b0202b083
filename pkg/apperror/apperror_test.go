package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{BadRequest, http.StatusBadRequest},
		{InvalidCredentials, http.StatusBadRequest},
		{Unauthorized, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusConflict},
		{Database, http.StatusInternalServerError},
		{Internal, http.StatusInternalServerError},
		{Unknown, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := New(c.kind, "x", nil).StatusCode(); got != c.want {
			t.Errorf("kind %d: got status %d, want %d", c.kind, got, c.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	e := NewNotFound("blog not found", nil)
	if e.Error() != "blog not found" {
		t.Fatalf("got %q", e.Error())
	}
	cause := errors.New("row missing")
	e = NewDatabase("failed to fetch blog", cause)
	if e.Error() != "failed to fetch blog: row missing" {
		t.Fatalf("got %q", e.Error())
	}
	if !errors.Is(e, cause) {
		t.Fatal("wrapped cause not reachable via errors.Is")
	}
}

func TestFromUnwrapsChain(t *testing.T) {
	inner := NewConflict("user already exists", nil)
	wrapped := fmt.Errorf("register: %w", inner)

	ae, ok := From(wrapped)
	if !ok {
		t.Fatal("From did not find the AppError in the chain")
	}
	if ae.Kind != Conflict {
		t.Fatalf("got kind %d, want Conflict", ae.Kind)
	}
	if _, ok := From(errors.New("plain")); ok {
		t.Fatal("From matched a plain error")
	}
}

func TestKindPredicates(t *testing.T) {
	if !IsNotFound(NewNotFound("x", nil)) {
		t.Fatal("IsNotFound false for NotFound")
	}
	if !IsConflict(NewConflict("x", nil)) {
		t.Fatal("IsConflict false for Conflict")
	}
	if !IsForbidden(NewForbidden("x", nil)) {
		t.Fatal("IsForbidden false for Forbidden")
	}
	if !IsInvalidCredentials(NewInvalidCredentials("x", nil)) {
		t.Fatal("IsInvalidCredentials false for InvalidCredentials")
	}
	if IsNotFound(NewConflict("x", nil)) {
		t.Fatal("IsNotFound true for Conflict")
	}
}
