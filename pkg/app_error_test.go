package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if got := appErr.Error(); got != "INTERNAL_ERROR: An internal error occurred: connection reset" {
		t.Fatalf("unexpected error string %q", got)
	}

	body := appErr.ToHTTPError()
	if body.Success || body.Error != "An internal error occurred" || body.Code != "INTERNAL_ERROR" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestAppError_DefaultMessage(t *testing.T) {
	body := NewDomainErrorSimple("NOT_FOUND", "", http.StatusNotFound).ToHTTPError()
	if body.Error != "Not Found" {
		t.Fatalf("expected status text, got %q", body.Error)
	}
}
