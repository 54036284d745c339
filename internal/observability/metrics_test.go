package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/v1/employees", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/api/v1/employees", "GET", 200, 30*time.Millisecond)
	m.RecordError("/api/v1/employees", "POST", "INTEGRITY_ERROR")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Requests["/api/v1/employees|GET|200"])
	assert.Equal(t, int64(20), snap.AvgMS["/api/v1/employees|GET|200"])
	assert.Equal(t, int64(1), snap.Errors["/api/v1/employees|POST|INTEGRITY_ERROR"])
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	assert.Empty(t, m.Snapshot().Requests)
}
