package repository

import (
	"math"

	"github.com/ospreyai/osprey/internal/domain"
)

// MetricsRepository derives overview metrics from the agent catalog on every read.
type MetricsRepository struct {
	agents *AgentRepository
	health domain.SystemHealth
}

// NewMetricsRepository creates a new MetricsRepository.
func NewMetricsRepository(agents *AgentRepository, health domain.SystemHealth) *MetricsRepository {
	return &MetricsRepository{
		agents: agents,
		health: health,
	}
}

// Overview computes the current overview metrics.
func (r *MetricsRepository) Overview() domain.OverviewMetrics {
	return ComputeOverviewMetrics(r.agents.List(), r.health)
}

// ComputeOverviewMetrics aggregates agent usage. An empty slice yields zero
// aggregates. SuccessRate is rounded to one decimal and AvgResponseTime to
// whole milliseconds.
func ComputeOverviewMetrics(agents []domain.Agent, health domain.SystemHealth) domain.OverviewMetrics {
	metrics := domain.OverviewMetrics{SystemHealth: health}
	if len(agents) == 0 {
		return metrics
	}

	var rateSum, latencySum float64
	for _, a := range agents {
		if a.Status == domain.AgentStatusActive {
			metrics.ActiveAgents++
		}
		metrics.TotalRequests += a.Metrics.Requests
		rateSum += a.Metrics.SuccessRate
		latencySum += a.Metrics.AvgResponseTime
	}

	n := float64(len(agents))
	metrics.SuccessRate = math.Round(rateSum/n*10) / 10
	metrics.AvgResponseTime = int64(math.Round(latencySum / n))
	return metrics
}
