package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCategoryAndStatus(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		err    error
		cat    Category
		status int
	}{
		{BadRequestError(cause, "bad"), CategoryDataError, http.StatusBadRequest},
		{UnAuthorizedError(nil, "who"), CategoryUnauthorized, http.StatusUnauthorized},
		{ForbiddenError(cause, "no"), CategoryForbidden, http.StatusForbidden},
		{ResourceNotFoundError(nil, "gone"), CategoryResourceNotFound, http.StatusNotFound},
		{ConflictError(cause, "dup"), CategoryDataConflict, http.StatusConflict},
		{DependencyError(cause), CategoryDependencyFailure, http.StatusBadGateway},
		{GeneralError(nil), CategoryGeneralError, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.cat.String(), func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tc.err)
			if !Is(wrapped, tc.cat) {
				t.Fatalf("expected category %s", tc.cat)
			}
			var svcErr *ServiceError
			if !errors.As(wrapped, &svcErr) {
				t.Fatalf("expected ServiceError")
			}
			if svcErr.StatusCode() != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, svcErr.StatusCode())
			}
		})
	}
}

func TestCategoryOf(t *testing.T) {
	if CategoryOf(nil) != CategoryNoError {
		t.Fatalf("expected no error category for nil")
	}
	if CategoryOf(errors.New("plain")) != CategoryGeneralError {
		t.Fatalf("expected plain errors to be general")
	}
	if !IsInternalError(DependencyError(nil)) {
		t.Fatalf("dependency failure should be internal")
	}
	if IsInternalError(BadRequestError(nil, "x")) {
		t.Fatalf("bad request should not be internal")
	}
	if !errors.Is(ConflictError(errSentinel, "dup"), errSentinel) {
		t.Fatalf("expected cause to unwrap")
	}
}

var errSentinel = errors.New("sentinel")
