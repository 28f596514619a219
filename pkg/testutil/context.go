package testutil

import (
	"net/http"
	"time"

	id "docflow/pkg/domain"
	"docflow/pkg/requestcontext"
)

// WithEmployee adds an employee ID to the request context.
// This simulates what the auth middleware would do for authenticated requests.
func WithEmployee(req *http.Request, employeeID id.EmployeeID) *http.Request {
	return req.WithContext(requestcontext.WithEmployeeID(req.Context(), employeeID))
}

// WithRequestTime pins the request clock so handlers observe a fixed now.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}

// WithRequestID adds a request ID to the request context.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
