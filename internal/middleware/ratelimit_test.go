package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/serroba/plugin-registry-go/internal/middleware"
	"github.com/serroba/plugin-registry-go/internal/ratelimit"
	"github.com/serroba/plugin-registry-go/internal/store"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type testOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}

func newLimitedAPI(t *testing.T, limits []ratelimit.LimitConfig) *chi.Mux {
	t.Helper()

	router := chi.NewMux()
	api := humachi.New(router, huma.DefaultConfig("Test", "1.0.0"))

	limiter := ratelimit.NewRouteLimiter(store.NewRateLimitMemoryStore())
	api.UseMiddleware(middleware.RateLimiter(api, limiter, zap.NewNop()))

	var metadata map[string]any
	if limits != nil {
		metadata = map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{Limits: limits},
		}
	}

	huma.Register(api, huma.Operation{
		Method:   http.MethodPost,
		Path:     "/limited",
		Metadata: metadata,
	}, func(_ context.Context, _ *struct{}) (*testOutput, error) {
		out := &testOutput{}
		out.Body.Message = "ok"

		return out, nil
	})

	return router
}

func doRequest(router *chi.Mux, userAgent string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/limited", nil)
	req.Header.Set("User-Agent", userAgent)
	req.RemoteAddr = "192.168.1.1:12345"

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestRateLimiter(t *testing.T) {
	t.Run("allows within quota then denies with 429", func(t *testing.T) {
		router := newLimitedAPI(t, []ratelimit.LimitConfig{{Max: 1, Window: 30 * time.Second}})

		first := doRequest(router, "TestAgent/1.0")
		assert.Equal(t, http.StatusOK, first.Code)

		second := doRequest(router, "TestAgent/1.0")
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
	})

	t.Run("tracks clients independently", func(t *testing.T) {
		router := newLimitedAPI(t, []ratelimit.LimitConfig{{Max: 1, Window: 30 * time.Second}})

		first := doRequest(router, "AgentA/1.0")
		assert.Equal(t, http.StatusOK, first.Code)

		other := doRequest(router, "AgentB/1.0")
		assert.Equal(t, http.StatusOK, other.Code, "a different client has its own window")
	})

	t.Run("allows again after the window expires", func(t *testing.T) {
		router := newLimitedAPI(t, []ratelimit.LimitConfig{{Max: 1, Window: 40 * time.Millisecond}})

		assert.Equal(t, http.StatusOK, doRequest(router, "TestAgent/1.0").Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "TestAgent/1.0").Code)

		time.Sleep(50 * time.Millisecond)

		assert.Equal(t, http.StatusOK, doRequest(router, "TestAgent/1.0").Code)
	})

	t.Run("leaves unconfigured routes unthrottled", func(t *testing.T) {
		router := newLimitedAPI(t, nil)

		for range 5 {
			assert.Equal(t, http.StatusOK, doRequest(router, "TestAgent/1.0").Code)
		}
	})

	t.Run("skips disabled endpoints", func(t *testing.T) {
		routerMux := chi.NewMux()
		api := humachi.New(routerMux, huma.DefaultConfig("Test", "1.0.0"))
		limiter := ratelimit.NewRouteLimiter(store.NewRateLimitMemoryStore())
		api.UseMiddleware(middleware.RateLimiter(api, limiter, zap.NewNop()))

		huma.Register(api, huma.Operation{
			Method: http.MethodPost,
			Path:   "/limited",
			Metadata: map[string]any{
				ratelimit.MetadataKey: ratelimit.EndpointConfig{
					Disabled: true,
					Limits:   []ratelimit.LimitConfig{{Max: 1, Window: time.Minute}},
				},
			},
		}, func(_ context.Context, _ *struct{}) (*testOutput, error) {
			return &testOutput{}, nil
		})

		for range 3 {
			assert.Equal(t, http.StatusOK, doRequest(routerMux, "TestAgent/1.0").Code)
		}
	})
}
