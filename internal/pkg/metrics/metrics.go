package metrics

import (
	"Parchment/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	contentLoadTime = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "content_load_time_seconds",
		Help:    "Content page load time reported through performance metrics.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	})
	contentCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "content_cache_lookups_total",
		Help: "Content page cache lookups by status.",
	}, []string{"status"})
	analyticsHitsFlushed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analytics_hits_flushed_total",
		Help: "Buffered content hits written to content analytics.",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(contentLoadTime, contentCacheLookups, analyticsHitsFlushed)
}

// Recorder 将性能记录导出为 Prometheus 指标
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (Recorder) ObservePerformance(loadTime float64, cacheStatus model.CacheStatus) {
	contentLoadTime.Observe(loadTime)
	contentCacheLookups.WithLabelValues(string(cacheStatus)).Inc()
}

func (Recorder) AddFlushedHits(views, likes, shares uint64) {
	analyticsHitsFlushed.WithLabelValues("views").Add(float64(views))
	analyticsHitsFlushed.WithLabelValues("likes").Add(float64(likes))
	analyticsHitsFlushed.WithLabelValues("shares").Add(float64(shares))
}

// Handler /metrics 路由
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
