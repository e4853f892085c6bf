package middleware

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/plugin-registry-go/internal/handlers"
)

// RequestMeta is a middleware that adds client IP and user-agent to the
// request context for the telemetry events emitted by the handlers.
func RequestMeta(_ huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		meta := handlers.RequestMeta{
			ClientIP:  clientIP(ctx),
			UserAgent: ctx.Header("User-Agent"),
		}

		newCtx := handlers.ContextWithRequestMeta(ctx.Context(), meta)
		ctx = huma.WithContext(ctx, newCtx)

		next(ctx)
	}
}
