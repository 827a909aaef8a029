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
	uploadsFailedTotal      atomic.Uint64
	askTotal                atomic.Uint64
	askFailedTotal          atomic.Uint64
	summarizeTotal          atomic.Uint64
	summarizeFailedTotal    atomic.Uint64
	extractionJobsTotal     atomic.Uint64
	extractionJobsFailed    atomic.Uint64
	extractionJobsCompleted atomic.Uint64

	agentDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncUpload increments the upload counter.
func IncUpload() { uploadsTotal.Add(1) }

// IncUploadFailed increments the failed-upload counter.
func IncUploadFailed() { uploadsFailedTotal.Add(1) }

// IncAsk increments the ask counter.
func IncAsk() { askTotal.Add(1) }

// IncAskFailed increments the failed-ask counter.
func IncAskFailed() { askFailedTotal.Add(1) }

// IncSummarize increments the summarize counter.
func IncSummarize() { summarizeTotal.Add(1) }

// IncSummarizeFailed increments the failed-summarize counter.
func IncSummarizeFailed() { summarizeFailedTotal.Add(1) }

// IncExtractionJobReceived increments the received re-extraction job counter.
func IncExtractionJobReceived() { extractionJobsTotal.Add(1) }

// IncExtractionJobFailed increments the failed re-extraction job counter.
func IncExtractionJobFailed() { extractionJobsFailed.Add(1) }

// IncExtractionJobCompleted increments the completed re-extraction job counter.
func IncExtractionJobCompleted() { extractionJobsCompleted.Add(1) }

// ObserveAgentDurationMs records an AI agent round-trip in milliseconds.
func ObserveAgentDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	agentDuration.Observe(value)
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
	writeCounter(&buf, "uploads_total", "Total document uploads", uploadsTotal.Load())
	writeCounter(&buf, "uploads_failed_total", "Total failed document uploads", uploadsFailedTotal.Load())
	writeCounter(&buf, "ask_total", "Total ask requests", askTotal.Load())
	writeCounter(&buf, "ask_failed_total", "Total failed ask requests", askFailedTotal.Load())
	writeCounter(&buf, "summarize_total", "Total summarize requests", summarizeTotal.Load())
	writeCounter(&buf, "summarize_failed_total", "Total failed summarize requests", summarizeFailedTotal.Load())
	writeCounter(&buf, "extraction_jobs_received_total", "Total re-extraction jobs received", extractionJobsTotal.Load())
	writeCounter(&buf, "extraction_jobs_failed_total", "Total re-extraction jobs failed", extractionJobsFailed.Load())
	writeCounter(&buf, "extraction_jobs_completed_total", "Total re-extraction jobs completed", extractionJobsCompleted.Load())
	writeHistogram(&buf, "agent_duration_ms", "AI agent round-trip in milliseconds", agentDuration.Snapshot())
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
