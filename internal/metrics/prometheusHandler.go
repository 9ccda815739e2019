package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
}, []string{"service"})

var pipelineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "pipeline_duration_seconds",
	Help:    "Total time spent in one summarization pipeline run.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30},
}, []string{"status"})

var chunksPerRun = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "pipeline_chunks_per_run",
	Help:    "Size of the pooled chunk set before ranking.",
	Buckets: []float64{0, 5, 10, 25, 50, 100, 250, 500},
})

var cacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "response_cache_hits_total",
	Help: "Upstream response cache hits and misses.",
}, []string{"result"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CapturePipelineMetrics(status string, timeElapsed time.Duration) {
	pipelineDuration.WithLabelValues(status).Observe(timeElapsed.Seconds())
}

func CaptureChunkPoolSize(count int) {
	chunksPerRun.Observe(float64(count))
}

func CountCacheHit() {
	cacheHitsTotal.WithLabelValues("hit").Inc()
}

func CountCacheMiss() {
	cacheHitsTotal.WithLabelValues("miss").Inc()
}
