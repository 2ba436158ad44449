package response

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"AttendEase/pkg/errors"
)

func TestErrorToHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.UserUnavailable, http.StatusForbidden},
		{errors.AlreadyCheckedIn, http.StatusForbidden},
		{errors.NoOpenCheckIn, http.StatusNotFound},
		{errors.NoCheckInsFound, http.StatusNotFound},
		{errors.AttendanceNotFound, http.StatusNotFound},
		{errors.EmployeeNotFound, http.StatusNotFound},
		{errors.InvalidCredentials, http.StatusUnauthorized},
		{errors.Unauthorized, http.StatusUnauthorized},
		{errors.ValidationFailed, http.StatusUnprocessableEntity},
		{errors.InvalidAction, http.StatusUnprocessableEntity},
		{errors.InvalidSortColumn, http.StatusUnprocessableEntity},
		{errors.EmailAlreadyRegistered, http.StatusUnprocessableEntity},
		{errors.InvalidUserID, http.StatusBadRequest},
		{errors.TooManyRequests, http.StatusTooManyRequests},
		{fmt.Errorf("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := errorToHTTPStatus(tt.err); got != tt.want {
			t.Errorf("errorToHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestErrorPayload(t *testing.T) {
	t.Run("business error passes through", func(t *testing.T) {
		status, detail := errorPayload(errors.EmployeeNotFound)
		if status != http.StatusNotFound {
			t.Errorf("status = %d, want %d", status, http.StatusNotFound)
		}
		if detail.Code != errors.EmployeeNotFound.Code || detail.Message != errors.EmployeeNotFound.Message {
			t.Errorf("detail = %+v, want code %q message %q",
				detail, errors.EmployeeNotFound.Code, errors.EmployeeNotFound.Message)
		}
	})

	t.Run("internal error hides original text", func(t *testing.T) {
		err := fmt.Errorf("dial tcp 10.0.0.5:5432: connect: connection refused")
		status, detail := errorPayload(err)
		if status != http.StatusInternalServerError {
			t.Errorf("status = %d, want %d", status, http.StatusInternalServerError)
		}
		if detail.Code != "INTERNAL_ERROR" {
			t.Errorf("code = %q, want INTERNAL_ERROR", detail.Code)
		}
		if detail.Message != internalErrorMessage {
			t.Errorf("message = %q, want %q", detail.Message, internalErrorMessage)
		}
		if strings.Contains(detail.Message, "5432") || strings.Contains(detail.Message, err.Error()) {
			t.Errorf("message %q leaks driver detail", detail.Message)
		}
	})
}
