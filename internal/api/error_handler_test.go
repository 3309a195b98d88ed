package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/subscribely/admin-dashboard/internal/api/handler"
	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrPlanNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		rec, _ := render(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestErrorHandler_ValidationErrorHasFieldsMap(t *testing.T) {
	rec, body := render(t, &handler.ValidationError{
		Fields: map[string]string{"email": "email must be a valid email"},
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	fields, ok := body["fields"].(map[string]any)
	if !ok || fields["email"] != "email must be a valid email" {
		t.Fatalf("expected fields map, got %+v", body)
	}
}

func TestErrorHandler_EchoErrorPassthrough(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusForbidden, "nope"))
	if rec.Code != http.StatusForbidden || body["error"] != "nope" {
		t.Fatalf("unexpected response: %d %+v", rec.Code, body)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec, body := render(t, errors.New("pointer dereference in sortRows"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %+v", body)
	}
}
