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
	uploadsTotal            atomic.Uint64
	extractionDegradedTotal atomic.Uint64
	tailorRequestsTotal     atomic.Uint64
	tailorFailedTotal       atomic.Uint64
	resumesSavedTotal       atomic.Uint64

	tailorDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncUploads increments the processed-uploads counter.
func IncUploads() {
	uploadsTotal.Add(1)
}

// IncExtractionDegraded increments the degraded-extraction counter.
func IncExtractionDegraded() {
	extractionDegradedTotal.Add(1)
}

// IncTailorRequests increments the tailor-requests counter.
func IncTailorRequests() {
	tailorRequestsTotal.Add(1)
}

// IncTailorFailed increments the tailor-failures counter.
func IncTailorFailed() {
	tailorFailedTotal.Add(1)
}

// IncResumesSaved increments the saved-records counter.
func IncResumesSaved() {
	resumesSavedTotal.Add(1)
}

// ObserveTailorDurationMs records one tailoring call duration in milliseconds.
func ObserveTailorDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	tailorDuration.Observe(value)
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
	writeCounter(&buf, "uploads_total", "Total file uploads processed", uploadsTotal.Load())
	writeCounter(&buf, "extraction_degraded_total", "Total extractions degraded to sentinel text", extractionDegradedTotal.Load())
	writeCounter(&buf, "tailor_requests_total", "Total tailoring requests", tailorRequestsTotal.Load())
	writeCounter(&buf, "tailor_failed_total", "Total tailoring failures", tailorFailedTotal.Load())
	writeCounter(&buf, "resumes_saved_total", "Total resume records saved", resumesSavedTotal.Load())
	writeHistogram(&buf, "tailor_duration_ms", "Tailoring call duration in milliseconds", tailorDuration.Snapshot())
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
		fmt.Fprintf(buf, "%s_bucket{le=%q} %d\n", name, strconv.FormatFloat(bound, 'f', -1, 64), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %g\n", name, snap.sum)
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}
