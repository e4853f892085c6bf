package handlers

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// HealthChecker defines the interface for checking a dependency's health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// RedisHealthChecker adapts redis.Client to HealthChecker interface.
type RedisHealthChecker struct {
	client *redis.Client
}

// NewRedisHealthChecker creates a new Redis health checker.
func NewRedisHealthChecker(client *redis.Client) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// Ping checks Redis connectivity.
func (r *RedisHealthChecker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// PostgresHealthChecker adapts a pgx pool to HealthChecker interface.
type PostgresHealthChecker struct {
	pool *pgxpool.Pool
}

// NewPostgresHealthChecker creates a new Postgres health checker.
func NewPostgresHealthChecker(pool *pgxpool.Pool) *PostgresHealthChecker {
	return &PostgresHealthChecker{pool: pool}
}

// Ping checks Postgres connectivity.
func (p *PostgresHealthChecker) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// HealthHandler handles health check operations.
type HealthHandler struct {
	redis    HealthChecker
	postgres HealthChecker
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(redis, postgres HealthChecker) *HealthHandler {
	return &HealthHandler{redis: redis, postgres: postgres}
}

// HealthResponse is the response for health check endpoint.
type HealthResponse struct {
	Body struct {
		Status   string `json:"status"`
		Redis    string `json:"redis"`
		Postgres string `json:"postgres"`
	}
}

// Check performs a health check of the application and its dependencies.
func (h *HealthHandler) Check(ctx context.Context, _ *struct{}) (*HealthResponse, error) {
	resp := &HealthResponse{}
	resp.Body.Status = "ok"

	if err := h.redis.Ping(ctx); err != nil {
		resp.Body.Redis = "unhealthy"
		resp.Body.Status = "degraded"
	} else {
		resp.Body.Redis = "healthy"
	}

	if err := h.postgres.Ping(ctx); err != nil {
		resp.Body.Postgres = "unhealthy"
		resp.Body.Status = "degraded"
	} else {
		resp.Body.Postgres = "healthy"
	}

	return resp, nil
}
