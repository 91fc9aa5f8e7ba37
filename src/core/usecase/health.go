package usecase

import (
	"context"
	"log/slog"

	"kioku/src/core/ports"
)

// HealthService reports the health of the application's dependencies.
type HealthService struct {
	log        *slog.Logger
	components map[string]ports.Repository
}

// NewHealthService creates a HealthService over named components.
func NewHealthService(log *slog.Logger, components map[string]ports.Repository) *HealthService {
	return &HealthService{log: log, components: components}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check pings every registered component and aggregates the result.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	for name, component := range s.components {
		if err := component.Health(ctx); err != nil {
			status.Status = "degraded"
			status.Components[name] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
			s.log.Warn("health check failed", "component", name, "error", err)
			continue
		}
		status.Components[name] = ComponentHealth{Status: "healthy"}
	}

	return status
}
