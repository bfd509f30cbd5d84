package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func serveError(err error) (int, APIResponse) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	c.Set("trace_id", "trace-1")
	HandleServiceError(c, err)

	var body APIResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	return rr.Code, body
}

func TestHandleServiceError_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{ErrUnauthorized, http.StatusUnauthorized},
		{NewValidationError("destination"), http.StatusBadRequest},
		{ErrItineraryNotFound, http.StatusNotFound},
		{ErrEmailAlreadyExists, http.StatusConflict},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{&GenerationError{Err: fmt.Errorf("%w: timeout", ErrUpstream)}, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		code, body := serveError(tc.err)
		if code != tc.code || body.Code != tc.code {
			t.Fatalf("%v: got %d, want %d", tc.err, code, tc.code)
		}
		if body.TraceID != "trace-1" || body.Status != "error" {
			t.Fatalf("%v: bad envelope %+v", tc.err, body)
		}
	}
}

func TestHandleServiceError_Messages(t *testing.T) {
	_, body := serveError(&GenerationError{Err: NewValidationError("destination", "startDate", "endDate")})
	if body.Message != "Required fields missing: destination, startDate, endDate" {
		t.Fatalf("validation message: %q", body.Message)
	}

	_, body = serveError(&GenerationError{Err: fmt.Errorf("%w: timeout", ErrUpstream)})
	if body.Message != "Itinerary generation failed: AI provider request failed: timeout" {
		t.Fatalf("generation message: %q", body.Message)
	}
}

func TestRespondHelpers_MissingTraceIDDoesNotPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	RespondCreated(c, map[string]string{"id": "1"}, "created")
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: %d", rr.Code)
	}
}
