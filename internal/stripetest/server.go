// Package stripetest provides an in-process fake of the payment API for tests.
package stripetest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// RecordedRequest is a request received by the fake server.
type RecordedRequest struct {
	Method      string
	Path        string
	EscapedPath string
	Query       url.Values
	Form        url.Values
	Header      http.Header
}

// Server is an httptest server routing requests with chi. Unrouted requests
// get the API's 404 error payload.
type Server struct {
	*httptest.Server

	router   chi.Router
	mu       sync.Mutex
	requests []RecordedRequest
}

// NewServer starts a fake server that is closed when the test ends. Routes
// are registered by the callback before the server starts, using chi
// patterns such as /v1/charges/{id}.
func NewServer(t testing.TB, routes func(r chi.Router)) *Server {
	t.Helper()

	server := &Server{router: chi.NewRouter()}
	server.router.Use(server.record)
	server.router.NotFound(ErrorResponse(http.StatusNotFound, "invalid_request_error", "resource_missing", "Unrecognized request URL"))
	server.router.MethodNotAllowed(ErrorResponse(http.StatusMethodNotAllowed, "invalid_request_error", "", "Method not allowed"))

	if routes != nil {
		routes(server.router)
	}

	server.Server = httptest.NewServer(server.router)
	t.Cleanup(server.Close)

	return server
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]RecordedRequest(nil), s.requests...)
}

// LastRequest returns the most recent request, or the zero value.
func (s *Server) LastRequest() RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return RecordedRequest{}
	}

	return s.requests[len(s.requests)-1]
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)
		request.Body = io.NopCloser(bytes.NewReader(body))

		form, _ := url.ParseQuery(string(body))

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:      request.Method,
			Path:        request.URL.Path,
			EscapedPath: request.URL.EscapedPath(),
			Query:       request.URL.Query(),
			Form:        form,
			Header:      request.Header.Clone(),
		})
		s.mu.Unlock()

		next.ServeHTTP(writer, request)
	})
}

// JSON responds with status and body encoded as JSON.
func JSON(status int, body any) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.Header().Set("Request-Id", "req_test")
		writer.WriteHeader(status)
		_ = json.NewEncoder(writer).Encode(body)
	}
}

// Raw responds with status and a literal body.
func Raw(status int, body string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.Header().Set("Request-Id", "req_test")
		writer.WriteHeader(status)
		_, _ = io.WriteString(writer, body)
	}
}

// ErrorResponse responds with the API error payload.
func ErrorResponse(status int, errorType, code, message string) http.HandlerFunc {
	payload := map[string]string{"type": errorType, "message": message}
	if code != "" {
		payload["code"] = code
	}

	return JSON(status, map[string]any{"error": payload})
}

// Object responds with {"id": <route id>, "object": object} merged with fields.
func Object(object string, fields map[string]any) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		body := map[string]any{"object": object}
		if id := chi.URLParam(request, "id"); id != "" {
			body["id"] = id
		}

		for key, value := range fields {
			body[key] = value
		}

		JSON(http.StatusOK, body)(writer, request)
	}
}

// List responds with a list envelope holding items.
func List(path string, hasMore bool, items ...any) http.HandlerFunc {
	if items == nil {
		items = []any{}
	}

	return JSON(http.StatusOK, map[string]any{
		"object":   "list",
		"url":      path,
		"has_more": hasMore,
		"data":     items,
	})
}
