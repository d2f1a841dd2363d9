package domain

// SystemHealth is a resource utilization snapshot in percent.
type SystemHealth struct {
	CPU     int
	Memory  int
	Storage int
	Network int
}

// OverviewMetrics aggregates usage across all agents.
type OverviewMetrics struct {
	ActiveAgents    int
	TotalRequests   int64
	SuccessRate     float64
	AvgResponseTime int64
	SystemHealth    SystemHealth
}
