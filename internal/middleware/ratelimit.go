package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/plugin-registry-go/internal/ratelimit"
	"go.uber.org/zap"
)

// RateLimiter returns a Huma middleware that enforces the per-route quotas
// declared in operation metadata. Routes without a rate limit config pass
// through untouched; denied requests get a 429 and never reach the handler.
func RateLimiter(
	api huma.API,
	limiter *ratelimit.RouteLimiter,
	logger *zap.Logger,
) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		cfg := ratelimit.GetEndpointConfig(ctx)
		if cfg == nil || cfg.Disabled || len(cfg.Limits) == 0 {
			next(ctx)

			return
		}

		route := operationPath(ctx)
		key := clientKey(ctx)

		for _, limit := range cfg.Limits {
			allowed, err := limiter.Admit(ctx.Context(), key, route, limit)
			if err != nil {
				logger.Error("rate limit check failed",
					zap.String("route", route), zap.Error(err))
				_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "internal server error", err)

				return
			}

			if !allowed {
				logger.Warn("rate limit exceeded",
					zap.String("route", route),
					zap.String("method", ctx.Method()),
					zap.Int64("max", limit.Max),
					zap.Duration("window", limit.Window),
					zap.String("client_ip", clientIP(ctx)),
				)

				msg := fmt.Sprintf("rate limit exceeded: max %d requests in %s",
					limit.Max, limit.Window)
				_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests, msg)

				return
			}
		}

		next(ctx)
	}
}

// operationPath extracts the route template from the operation, if available.
func operationPath(ctx huma.Context) string {
	if op := ctx.Operation(); op != nil {
		return op.Path
	}

	return ""
}

// clientKey generates a unique key for rate limiting based on IP and User-Agent.
func clientKey(ctx huma.Context) string {
	ip := clientIP(ctx)
	ua := ctx.Header("User-Agent")

	hash := sha256.Sum256([]byte(ip + "|" + ua))

	return hex.EncodeToString(hash[:])
}

// clientIP extracts the client IP from the request, considering proxies.
func clientIP(ctx huma.Context) string {
	// X-Forwarded-For may contain multiple IPs; the first is the client
	if xff := ctx.Header("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := ctx.Header("X-Real-IP"); xri != "" {
		return xri
	}

	host := ctx.Host()

	ip, _, err := net.SplitHostPort(host)
	if err != nil {
		return host
	}

	return ip
}
