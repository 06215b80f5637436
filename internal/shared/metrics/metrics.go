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
	resumeCheckStartedTotal   atomic.Uint64
	resumeCheckCompletedTotal atomic.Uint64
	resumeCheckFailedTotal    atomic.Uint64
	catalogUnavailableTotal   atomic.Uint64
	storageWriteFailedTotal   atomic.Uint64
	panicsRecoveredTotal      atomic.Uint64
	rateLimitedTotal          atomic.Uint64

	resumeCheckDuration = newHistogram([]float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000})
)

// IncResumeCheckStarted increments the started counter.
func IncResumeCheckStarted() {
	resumeCheckStartedTotal.Add(1)
}

// IncResumeCheckCompleted increments the completed counter.
func IncResumeCheckCompleted() {
	resumeCheckCompletedTotal.Add(1)
}

// IncResumeCheckFailed increments the failed counter.
func IncResumeCheckFailed() {
	resumeCheckFailedTotal.Add(1)
}

// IncCatalogUnavailable counts checks that ran without a job catalog.
func IncCatalogUnavailable() {
	catalogUnavailableTotal.Add(1)
}

// IncStorageWriteFailed counts check results that could not be persisted.
func IncStorageWriteFailed() {
	storageWriteFailedTotal.Add(1)
}

// IncPanicRecovered counts handler panics caught by the recovery middleware.
func IncPanicRecovered() {
	panicsRecoveredTotal.Add(1)
}

// IncRateLimited counts requests rejected with 429.
func IncRateLimited() {
	rateLimitedTotal.Add(1)
}

// ObserveResumeCheckDurationMs records a pipeline duration in milliseconds.
func ObserveResumeCheckDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	resumeCheckDuration.Observe(value)
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
	writeCounter(&buf, "resume_check_started_total", "Total resume checks started", resumeCheckStartedTotal.Load())
	writeCounter(&buf, "resume_check_completed_total", "Total resume checks completed", resumeCheckCompletedTotal.Load())
	writeCounter(&buf, "resume_check_failed_total", "Total resume checks failed", resumeCheckFailedTotal.Load())
	writeCounter(&buf, "catalog_unavailable_total", "Resume checks run without a job catalog", catalogUnavailableTotal.Load())
	writeCounter(&buf, "storage_write_failed_total", "Resume check results that were not persisted", storageWriteFailedTotal.Load())
	writeCounter(&buf, "http_panics_recovered_total", "Handler panics recovered", panicsRecoveredTotal.Load())
	writeCounter(&buf, "http_rate_limited_total", "Requests rejected by the rate limiter", rateLimitedTotal.Load())
	writeHistogram(&buf, "resume_check_duration_ms", "Resume check duration in milliseconds", resumeCheckDuration.Snapshot())
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
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
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
