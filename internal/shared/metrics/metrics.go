package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	engineRunsRealTotal   atomic.Uint64
	engineRunsDemoTotal   atomic.Uint64
	engineRunsFailedTotal atomic.Uint64
	chatQueriesTotal      atomic.Uint64

	engineDuration = newHistogram([]float64{250, 500, 1000, 2000, 5000, 10000, 30000, 60000, 120000, 300000, 600000})
)

// IncEngineRunReal increments the real-engine run counter.
func IncEngineRunReal() {
	engineRunsRealTotal.Add(1)
}

// IncEngineRunDemo increments the demo fallback counter.
func IncEngineRunDemo() {
	engineRunsDemoTotal.Add(1)
}

// IncEngineRunFailed increments the failed run counter.
func IncEngineRunFailed() {
	engineRunsFailedTotal.Add(1)
}

// IncChatQuery increments the chat query counter.
func IncChatQuery() {
	chatQueriesTotal.Add(1)
}

// ObserveEngineDurationMs records an engine invocation duration in milliseconds.
func ObserveEngineDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	engineDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "engine_runs_real_total", "Total analysis runs served by the real engine", engineRunsRealTotal.Load())
	writeCounter(&buf, "engine_runs_demo_total", "Total analysis runs served by the demo generator", engineRunsDemoTotal.Load())
	writeCounter(&buf, "engine_runs_failed_total", "Total analysis runs that surfaced an engine error", engineRunsFailedTotal.Load())
	writeCounter(&buf, "chat_queries_total", "Total chat queries answered", chatQueriesTotal.Load())
	writeHistogram(&buf, "engine_duration_ms", "Engine invocation duration in milliseconds", engineDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
