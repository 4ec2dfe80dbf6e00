package metrics

import (
	"fmt"
	"sync"
	"time"
)

const (
	// maxStoredQueries bounds the trailing query log.
	maxStoredQueries = 50
	// snapshotQueries is how many of those a snapshot exposes.
	snapshotQueries = 5

	questionPreviewLen = 50
)

// QueryRecord is one entry in the trailing query log.
type QueryRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Question  string    `json:"question"`
	Profile   string    `json:"profile"`
	Latency   float64   `json:"latency"`
}

// Snapshot is a point-in-time read of the tracker with derived rates.
type Snapshot struct {
	TotalQueries    int           `json:"total_queries"`
	ProfileDetected int           `json:"profile_detected"`
	DetectionRate   string        `json:"detection_rate"`
	AverageLatency  string        `json:"average_latency"`
	TotalTime       string        `json:"total_time"`
	RecentQueries   []QueryRecord `json:"recent_queries"`
}

// Tracker accumulates process-wide query metrics. Safe for concurrent use;
// counters reset only on process restart.
type Tracker struct {
	mu              sync.Mutex
	queryCount      int
	totalLatency    time.Duration
	profileDetected int
	queries         []QueryRecord
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Record registers one completed query. profileName is the detected profile
// or "general" when detection found nothing.
func (t *Tracker) Record(question, profileName string, detected bool, latency time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.queryCount++
	t.totalLatency += latency
	if detected {
		t.profileDetected++
	}

	t.queries = append(t.queries, QueryRecord{
		Timestamp: time.Now(),
		Question:  previewQuestion(question),
		Profile:   profileName,
		Latency:   latency.Seconds(),
	})
	if len(t.queries) > maxStoredQueries {
		t.queries = t.queries[len(t.queries)-maxStoredQueries:]
	}
}

// Snapshot returns current totals plus derived detection rate and average
// latency. Rates are zero-valued before the first query.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := Snapshot{
		TotalQueries:    t.queryCount,
		ProfileDetected: t.profileDetected,
		DetectionRate:   "0.0%",
		AverageLatency:  "0.00s",
		TotalTime:       fmt.Sprintf("%.2fs", t.totalLatency.Seconds()),
	}

	if t.queryCount > 0 {
		rate := float64(t.profileDetected) / float64(t.queryCount) * 100
		snap.DetectionRate = fmt.Sprintf("%.1f%%", rate)
		snap.AverageLatency = fmt.Sprintf("%.2fs", t.totalLatency.Seconds()/float64(t.queryCount))
	}

	start := len(t.queries) - snapshotQueries
	if start < 0 {
		start = 0
	}
	snap.RecentQueries = append([]QueryRecord(nil), t.queries[start:]...)

	return snap
}

func previewQuestion(question string) string {
	runes := []rune(question)
	if len(runes) > questionPreviewLen {
		runes = runes[:questionPreviewLen]
	}
	return string(runes) + "..."
}
