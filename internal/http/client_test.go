package http_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fivetwenty-io/stripe-client/internal/auth"
	stripehttp "github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.record("debug", msg, fields)
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.record("info", msg, fields)
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.record("warn", msg, fields)
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.record("error", msg, fields)
}

type testObject struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Amount int64  `json:"amount"`
}

func newCredentials(t *testing.T) *auth.Credentials {
	t.Helper()

	credentials, err := auth.NewCredentials("sk_test_4eC39HqLyjWDarjtT1zdp7dc")
	require.NoError(t, err)

	return credentials
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Send(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/charges/ch_1", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "Bearer sk_test_4eC39HqLyjWDarjtT1zdp7dc", request.Header.Get("Authorization"))
			assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))
			assert.Equal(t, "2024-06-20", request.Header.Get("Stripe-Version"))
			assert.True(t, strings.HasPrefix(request.Header.Get("User-Agent"), "stripe-client-go/"))
			assert.Empty(t, request.Header.Get("Stripe-Account"))

			_, _ = fmt.Fprint(writer, `{"id":"ch_1","object":"charge","amount":2000}`)
		}))
		defer server.Close()

		client := stripehttp.NewClient(server.URL, newCredentials(t))

		var result testObject

		err := client.Send(context.Background(), &stripehttp.Request{Method: http.MethodGet, Path: "/v1/charges/ch_1"}, &result)
		require.NoError(t, err)
		assert.Equal(t, testObject{ID: "ch_1", Object: "charge", Amount: 2000}, result)
	})

	t.Run("query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "expand[0]=data.customer&limit=3", request.URL.RawQuery)
			assert.Equal(t, "data.customer", request.URL.Query().Get("expand[0]"))

			_, _ = fmt.Fprint(writer, `{"object":"list","data":[],"has_more":false}`)
		}))
		defer server.Close()

		client := stripehttp.NewClient(server.URL, newCredentials(t))

		var result stripe.List[testObject]

		err := client.Send(context.Background(), &stripehttp.Request{
			Method: http.MethodGet,
			Path:   "/v1/charges",
			Query:  stripe.Params{"limit": stripe.Int(3), "expand": stripe.Expand("data.customer")},
		}, &result)
		require.NoError(t, err)
		assert.Equal(t, "list", result.Object)
	})

	t.Run("form body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Empty(t, request.URL.RawQuery)
			assert.NoError(t, request.ParseForm())
			assert.Equal(t, "gold", request.PostForm.Get("items[0][plan]"))
			assert.Equal(t, "a&b+c", request.PostForm.Get("metadata[note]"))

			_, _ = fmt.Fprint(writer, `{"id":"sub_1","object":"subscription"}`)
		}))
		defer server.Close()

		client := stripehttp.NewClient(server.URL, newCredentials(t))

		err := client.Send(context.Background(), &stripehttp.Request{
			Method: http.MethodPost,
			Path:   "/v1/subscriptions",
			Body: stripe.Params{
				"items":    stripe.Array{stripe.Params{"plan": stripe.String("gold")}},
				"metadata": stripe.Params{"note": stripe.String("a&b+c")},
			},
		}, nil)
		require.NoError(t, err)
	})

	t.Run("caller headers override defaults", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path == "/v1/balance" {
				assert.Equal(t, []string{"2020-08-27"}, request.Header.Values("Stripe-Version"))
				assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			} else {
				// The override is per call.
				assert.Equal(t, []string{"2024-06-20"}, request.Header.Values("Stripe-Version"))
			}

			_, _ = fmt.Fprint(writer, `{}`)
		}))
		defer server.Close()

		client := stripehttp.NewClient(server.URL, newCredentials(t))

		err := client.Send(context.Background(), &stripehttp.Request{
			Method: http.MethodGet,
			Path:   "/v1/balance",
			Headers: map[string]string{
				"stripe-version":  "2020-08-27",
				"X-Custom-Header": "custom-value",
			},
		}, nil)
		require.NoError(t, err)

		err = client.Send(context.Background(), &stripehttp.Request{Method: http.MethodGet, Path: "/v1/account"}, nil)
		require.NoError(t, err)
	})

	t.Run("connected account", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "acct_123", request.Header.Get("Stripe-Account"))

			_, _ = fmt.Fprint(writer, `{}`)
		}))
		defer server.Close()

		client := stripehttp.NewClient(server.URL, newCredentials(t), stripehttp.WithStripeAccount("acct_123"))

		err := client.Send(context.Background(), &stripehttp.Request{Method: http.MethodGet, Path: "/v1/balance"}, nil)
		require.NoError(t, err)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Request-Id", "req_abc")
			_, _ = fmt.Fprint(writer, `{"id":"ch_1"}`)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := stripehttp.NewClient(server.URL, newCredentials(t), stripehttp.WithLogger(logger), stripehttp.WithDebug(true))

		err := client.Send(context.Background(), &stripehttp.Request{Method: http.MethodGet, Path: "/v1/charges/ch_1"}, nil)
		require.NoError(t, err)

		// Should have logged request and response
		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])

		requestFields, ok := logger.logs[0]["fields"].(map[string]interface{})
		require.True(t, ok)
		headers, ok := requestFields["headers"].(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "***", headers["Authorization"])
		assert.NotContains(t, fmt.Sprint(logger.logs), "sk_test_4eC39HqLyjWDarjtT1zdp7dc")

		responseFields, ok := logger.logs[1]["fields"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "req_abc", responseFields["request_id"])
		assert.Equal(t, 200, responseFields["status"])
	})

	t.Run("no logging without debug", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = fmt.Fprint(writer, `{}`)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := stripehttp.NewClient(server.URL, newCredentials(t), stripehttp.WithLogger(logger))

		err := client.Send(context.Background(), &stripehttp.Request{Method: http.MethodGet, Path: "/v1/balance"}, nil)
		require.NoError(t, err)
		assert.Empty(t, logger.logs)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_SendErrors(t *testing.T) {
	t.Parallel()

	t.Run("rate limited", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.Header().Set("Request-Id", "req_429")
			writer.WriteHeader(http.StatusTooManyRequests)
			_, _ = fmt.Fprint(writer, `{"error":{"type":"rate_limit_error","message":"Too many requests"}}`)
		}))
		defer server.Close()

		client := stripehttp.NewClient(server.URL, newCredentials(t))

		result := testObject{ID: "untouched"}

		err := client.Send(context.Background(), &stripehttp.Request{Method: http.MethodGet, Path: "/v1/charges/ch_1"}, &result)
		require.Error(t, err)
		assert.True(t, stripe.IsRateLimited(err))

		apiErr, ok := stripe.AsError(err)
		require.True(t, ok)
		assert.Equal(t, 429, apiErr.HTTPStatusCode)
		assert.Equal(t, "req_429", apiErr.RequestID)
		assert.Equal(t, "Too many requests", apiErr.Message)
		assert.Equal(t, "untouched", result.ID)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("non-200 success codes are errors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusCreated)
			_, _ = fmt.Fprint(writer, `{"error":{"type":"api_error","message":"unexpected"}}`)
		}))
		defer server.Close()

		client := stripehttp.NewClient(server.URL, newCredentials(t))

		err := client.Send(context.Background(), &stripehttp.Request{Method: http.MethodPost, Path: "/v1/charges"}, &testObject{})

		apiErr, ok := stripe.AsError(err)
		require.True(t, ok)
		assert.Equal(t, stripe.ErrorTypeAPI, apiErr.Type)
		assert.Equal(t, 201, apiErr.HTTPStatusCode)
	})

	t.Run("malformed success body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = fmt.Fprint(writer, `{"id": 42}`)
		}))
		defer server.Close()

		client := stripehttp.NewClient(server.URL, newCredentials(t))

		err := client.Send(context.Background(), &stripehttp.Request{Method: http.MethodGet, Path: "/v1/charges/ch_1"}, &testObject{})
		require.Error(t, err)
		assert.True(t, stripe.IsContractViolation(err))

		_, ok := stripe.AsError(err)
		assert.False(t, ok)

		var decodeErr *stripe.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, 200, decodeErr.StatusCode)
		assert.Contains(t, decodeErr.Target, "testObject")
	})

	t.Run("malformed error body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = fmt.Fprint(writer, `<html>bad gateway</html>`)
		}))
		defer server.Close()

		client := stripehttp.NewClient(server.URL, newCredentials(t))

		err := client.Send(context.Background(), &stripehttp.Request{Method: http.MethodGet, Path: "/v1/balance"}, nil)
		require.Error(t, err)
		assert.True(t, stripe.IsContractViolation(err))
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		serverURL := server.URL
		server.Close()

		logger := &MockLogger{}
		client := stripehttp.NewClient(serverURL, newCredentials(t), stripehttp.WithLogger(logger))

		err := client.Send(context.Background(), &stripehttp.Request{Method: http.MethodGet, Path: "/v1/balance"}, nil)
		require.Error(t, err)
		assert.True(t, stripe.IsConnectionError(err))
		require.Error(t, errors.Unwrap(err))

		require.Len(t, logger.logs, 1)
		assert.Equal(t, "warn", logger.logs[0]["level"])
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = fmt.Fprint(writer, `{}`)
		}))
		defer server.Close()

		client := stripehttp.NewClient(server.URL, newCredentials(t))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := client.Send(ctx, &stripehttp.Request{Method: http.MethodGet, Path: "/v1/balance"}, nil)
		require.Error(t, err)
		assert.True(t, stripe.IsConnectionError(err))
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_IdempotencyKeys(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		keys = map[string]string{}
	)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		mu.Lock()
		keys[request.Method+" "+request.URL.Path] = request.Header.Get("Idempotency-Key")
		mu.Unlock()

		_, _ = fmt.Fprint(writer, `{}`)
	}))
	defer server.Close()

	client := stripehttp.NewClient(server.URL, newCredentials(t), stripehttp.WithIdempotencyKeys(true))
	ctx := context.Background()

	require.NoError(t, client.Send(ctx, &stripehttp.Request{Method: http.MethodPost, Path: "/v1/charges"}, nil))
	require.NoError(t, client.Send(ctx, &stripehttp.Request{Method: http.MethodGet, Path: "/v1/charges"}, nil))
	require.NoError(t, client.Send(ctx, &stripehttp.Request{
		Method:  http.MethodPost,
		Path:    "/v1/refunds",
		Headers: map[string]string{"Idempotency-Key": "caller-key"},
	}, nil))

	_, err := uuid.Parse(keys["POST /v1/charges"])
	require.NoError(t, err)
	assert.Empty(t, keys["GET /v1/charges"])
	assert.Equal(t, "caller-key", keys["POST /v1/refunds"])
}

func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()

	t.Run("single attempt by default", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = fmt.Fprint(writer, `{"error":{"type":"api_error","message":"boom"}}`)
		}))
		defer server.Close()

		client := stripehttp.NewClient(server.URL, newCredentials(t))

		err := client.Send(context.Background(), &stripehttp.Request{Method: http.MethodGet, Path: "/v1/balance"}, nil)
		require.Error(t, err)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("opt-in retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)

				return
			}

			assert.NoError(t, request.ParseForm())
			assert.Equal(t, "100", request.PostForm.Get("amount"))
			_, _ = fmt.Fprint(writer, `{"id":"ch_1","amount":100}`)
		}))
		defer server.Close()

		client := stripehttp.NewClient(server.URL, newCredentials(t),
			stripehttp.WithRetryConfig(3, time.Millisecond, 10*time.Millisecond))

		var result testObject

		err := client.Send(context.Background(), &stripehttp.Request{
			Method: http.MethodPost,
			Path:   "/v1/charges",
			Body:   stripe.Params{"amount": stripe.Int(100)},
		}, &result)
		require.NoError(t, err)
		assert.Equal(t, int64(100), result.Amount)
		assert.Equal(t, int32(3), attempts.Load())
	})
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestClient_WithDoer(t *testing.T) {
	t.Parallel()

	var captured *http.Request

	doer := doerFunc(func(req *http.Request) (*http.Response, error) {
		captured = req

		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       http.NoBody,
		}, nil
	})

	client := stripehttp.NewClient("https://api.example.com/", newCredentials(t),
		stripehttp.WithDoer(doer),
		stripehttp.WithUserAgent("custom-agent/1.0"),
		stripehttp.WithAPIVersion("2023-10-16"))

	err := client.Send(context.Background(), &stripehttp.Request{Method: http.MethodDelete, Path: "/v1/customers/cus_1"}, nil)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "https://api.example.com/v1/customers/cus_1", captured.URL.String())
	assert.Equal(t, "custom-agent/1.0", captured.Header.Get("User-Agent"))
	assert.Equal(t, "2023-10-16", captured.Header.Get("Stripe-Version"))
}
