package metrics

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerCountsAndDetectionRate(t *testing.T) {
	tracker := NewTracker()

	tracker.Record("I am a doctor, what is 4T?", "doctor", true, 120*time.Millisecond)
	tracker.Record("What is the Bell Curve?", "general", false, 80*time.Millisecond)
	tracker.Record("As an HR leader, how do I hire?", "hr_leader", true, 100*time.Millisecond)

	snap := tracker.Snapshot()
	assert.Equal(t, 3, snap.TotalQueries)
	assert.Equal(t, 2, snap.ProfileDetected)
	assert.Equal(t, "66.7%", snap.DetectionRate)
	assert.Equal(t, "0.10s", snap.AverageLatency)
	assert.Equal(t, "0.30s", snap.TotalTime)
}

func TestTrackerEmptySnapshot(t *testing.T) {
	snap := NewTracker().Snapshot()
	assert.Equal(t, 0, snap.TotalQueries)
	assert.Equal(t, "0.0%", snap.DetectionRate)
	assert.Equal(t, "0.00s", snap.AverageLatency)
	assert.Empty(t, snap.RecentQueries)
}

func TestTrackerTruncatesQuestionPreview(t *testing.T) {
	tracker := NewTracker()
	long := strings.Repeat("q", 80)
	tracker.Record(long, "general", false, time.Millisecond)

	snap := tracker.Snapshot()
	require.Len(t, snap.RecentQueries, 1)
	assert.Equal(t, strings.Repeat("q", 50)+"...", snap.RecentQueries[0].Question)
}

func TestTrackerRecentQueriesBounded(t *testing.T) {
	tracker := NewTracker()
	for i := 0; i < 9; i++ {
		tracker.Record("question", "general", false, time.Millisecond)
	}

	snap := tracker.Snapshot()
	assert.Len(t, snap.RecentQueries, 5)
	assert.Equal(t, 9, snap.TotalQueries)
}

func TestTrackerConcurrentRecords(t *testing.T) {
	tracker := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(detected bool) {
			defer wg.Done()
			tracker.Record("concurrent question", "doctor", detected, time.Millisecond)
		}(i%2 == 0)
	}
	wg.Wait()

	snap := tracker.Snapshot()
	assert.Equal(t, 100, snap.TotalQueries)
	assert.Equal(t, 50, snap.ProfileDetected)
	assert.Equal(t, "50.0%", snap.DetectionRate)
}
