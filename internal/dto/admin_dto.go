package dto

import (
	"ironlady-ai-be/internal/pkg/logger"
	"ironlady-ai-be/pkg/rag/metrics"
)

type DashboardResponse struct {
	Feedback FeedbackStatsResponse `json:"feedback"`
	Queries  metrics.Snapshot      `json:"queries"`
}

type GetLogsResponse struct {
	Logs  []logger.LogEntry `json:"logs"`
	Count int               `json:"count"`
}
