package services

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/lac-hong-legacy/sdr_trainer/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	MONITORING_SVC          = "monitoring_svc"
	SERVICE_NAME            = "sdr_trainer"
	DEFAULT_PROMETHEUS_PORT = 2112

	// activeEndpointLabel labels the in-flight gauge, which is raised before
	// the route is matched.
	activeEndpointLabel = "all"
)

// HTTP Metrics
var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"endpoint", "method", "status"},
	)

	httpRequestsSuccessfulTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_successful_total",
			Help: "Total successful HTTP requests (2xx status codes)",
		},
		[]string{"endpoint", "method"},
	)

	httpRequestsFailedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_failed_total",
			Help: "Total failed HTTP requests (4xx, 5xx status codes)",
		},
		[]string{"endpoint", "method"},
	)

	httpRequestsActive = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_active",
			Help: "Number of active concurrent HTTP requests",
		},
		[]string{"endpoint", "method"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint", "method", "status"},
	)

	httpResponseSizeBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response payload size in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
		},
		[]string{"endpoint", "method"},
	)
)

// System Metrics
var (
	heapAllocBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "heap_alloc_bytes",
			Help: "Heap memory allocated in bytes",
		},
	)

	heapSysBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "heap_sys_bytes",
			Help: "Heap memory obtained from system in bytes",
		},
	)

	gcTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gc_total",
			Help: "Total number of garbage collections",
		},
	)

	memoryUsageBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "memory_usage_bytes",
			Help: "Current memory usage in bytes",
		},
	)

	memoryUsagePercent = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "memory_usage_percent",
			Help: "Memory usage percentage",
		},
	)
)

// Quiz Metrics
var (
	quizAnswersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_answers_total",
			Help: "Answers recorded by the progress engine",
		},
		[]string{"category", "result"},
	)

	quizLevelUpsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quiz_level_ups_total",
			Help: "Level increases",
		},
	)

	quizBadgesUnlockedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_badges_unlocked_total",
			Help: "Badges granted",
		},
		[]string{"badge"},
	)

	quizMissedRecordedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quiz_missed_recorded_total",
			Help: "Misses written to the review queue",
		},
	)

	quizReviewGraduationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quiz_review_graduations_total",
			Help: "Missed questions removed after a correct review",
		},
	)

	quizSessionsStartedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_sessions_started_total",
			Help: "Quiz sessions started",
		},
		[]string{"mode"},
	)
)

// QuizRecorder receives domain events from the engines.
type QuizRecorder interface {
	AnswerRecorded(category string, correct bool)
	LevelUp()
	BadgeUnlocked(badgeID string)
	MissRecorded()
	ReviewGraduated()
	SessionStarted(mode string)
}

type noopRecorder struct{}

func (noopRecorder) AnswerRecorded(string, bool) {}
func (noopRecorder) LevelUp()                    {}
func (noopRecorder) BadgeUnlocked(string)        {}
func (noopRecorder) MissRecorded()               {}
func (noopRecorder) ReviewGraduated()            {}
func (noopRecorder) SessionStarted(string)       {}

type MonitoringService struct {
	appContext.DefaultService

	port     int
	host     string
	register *prometheus.Registry

	closed      chan struct{}
	closeOnce   sync.Once
	server      *fiber.App
	lastGCCount uint32
}

func (svc *MonitoringService) Id() string {
	return MONITORING_SVC
}

func (svc *MonitoringService) Configure(ctx *appContext.Context) error {
	portStr := os.Getenv("PROMETHEUS_PORT")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = DEFAULT_PROMETHEUS_PORT
	}
	svc.port = port
	svc.host = os.Getenv("HTTP_HOST")
	if svc.host == "" {
		svc.host = DEFAULT_HTTP_HOST
	}
	return svc.DefaultService.Configure(ctx)
}

// Start serves /metrics in the background; the HTTP service owns the
// blocking listener.
func (svc *MonitoringService) Start() error {
	svc.closed = make(chan struct{}, 1)

	// Create new registry
	reg := prometheus.NewRegistry()

	// Register default collectors (includes Go runtime metrics like memory)
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Register custom metrics
	reg.MustRegister(
		httpRequestsTotal,
		httpRequestsSuccessfulTotal,
		httpRequestsFailedTotal,
		httpRequestsActive,
		httpRequestDurationSeconds,
		httpResponseSizeBytes,
		heapAllocBytes,
		heapSysBytes,
		gcTotal,
		memoryUsageBytes,
		memoryUsagePercent,
		quizAnswersTotal,
		quizLevelUpsTotal,
		quizBadgesUnlockedTotal,
		quizMissedRecordedTotal,
		quizReviewGraduationsTotal,
		quizSessionsStartedTotal,
	)

	svc.register = reg

	svc.initializeMetrics()

	// Start memory metrics updater
	go svc.updateMemoryMetrics()

	config := fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		},
	}

	svc.server = fiber.New(config)
	svc.server.Use(recover.New())

	svc.server.Get("/metrics", svc.metricsHandler)
	svc.server.Get("/health", svc.healthHandler)

	addr := fmt.Sprintf("%s:%d", svc.host, svc.port)
	go func() {
		if err := svc.server.Listen(addr); err != nil {
			log.Error().Err(err).Str("addr", addr).Msg("Metrics listener stopped")
		}
	}()

	log.Info().Str("addr", addr).Msg("Prometheus metrics server started")
	return nil
}

func (svc *MonitoringService) Shutdown() {
	if svc.closed != nil {
		svc.closeOnce.Do(func() { close(svc.closed) })
	}
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

func (svc *MonitoringService) metricsHandler(c *fiber.Ctx) error {
	handler := promhttp.HandlerFor(svc.register, promhttp.HandlerOpts{})
	return adaptor.HTTPHandler(handler)(c)
}

func (svc *MonitoringService) healthHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "healthy",
		"service":   SERVICE_NAME,
		"timestamp": time.Now().Unix(),
	})
}

func (svc *MonitoringService) initializeMetrics() {
	// Initialize HTTP metrics with zero values
	httpRequestsTotal.WithLabelValues("/health", "GET", "200").Add(0)
	httpRequestsSuccessfulTotal.WithLabelValues("/health", "GET").Add(0)
	httpRequestsActive.WithLabelValues("/health", "GET").Set(0)
	httpRequestDurationSeconds.WithLabelValues("/health", "GET", "200").Observe(0)
	httpResponseSizeBytes.WithLabelValues("/health", "GET").Observe(0)

	for _, category := range shared.Categories {
		quizAnswersTotal.WithLabelValues(category, "correct").Add(0)
		quizAnswersTotal.WithLabelValues(category, "incorrect").Add(0)
	}
	for _, mode := range shared.StudyModes {
		quizSessionsStartedTotal.WithLabelValues(mode).Add(0)
	}

	// Initialize system metrics
	heapAllocBytes.Set(0)
	heapSysBytes.Set(0)
	memoryUsageBytes.Set(0)
	memoryUsagePercent.Set(0)

	log.Info().Msg("Metrics initialized successfully")
}

// updateMemoryMetrics updates memory-related metrics every 15 seconds
func (svc *MonitoringService) updateMemoryMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	log.Info().Msg("Memory metrics updater started")

	for {
		select {
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			// Update heap metrics
			heapAllocBytes.Set(float64(m.Alloc))
			heapSysBytes.Set(float64(m.Sys))

			// Update GC count (only increment difference)
			if m.NumGC > svc.lastGCCount {
				gcTotal.Add(float64(m.NumGC - svc.lastGCCount))
				svc.lastGCCount = m.NumGC
			}

			// Update memory usage
			memoryUsageBytes.Set(float64(m.Alloc))

			// Calculate memory usage percentage (approximate)
			memPercent := float64(m.Alloc) / float64(m.Sys) * 100
			if memPercent > 100 {
				memPercent = 100
			}
			memoryUsagePercent.Set(memPercent)

		case <-svc.closed:
			log.Info().Msg("Memory metrics updater stopped")
			return
		}
	}
}

// RecordRequest records HTTP request metrics
func (svc *MonitoringService) RecordRequest(method, endpoint, status string, duration time.Duration, responseSize int) {
	httpRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
	httpRequestDurationSeconds.WithLabelValues(endpoint, method, status).Observe(duration.Seconds())
	httpResponseSizeBytes.WithLabelValues(endpoint, method).Observe(float64(responseSize))

	statusCode, _ := strconv.Atoi(status)
	if statusCode >= 200 && statusCode < 400 {
		httpRequestsSuccessfulTotal.WithLabelValues(endpoint, method).Inc()
	} else if statusCode >= 400 {
		httpRequestsFailedTotal.WithLabelValues(endpoint, method).Inc()
	}
}

// IncrementActiveRequests increments the active requests gauge
func (svc *MonitoringService) IncrementActiveRequests(endpoint, method string) {
	httpRequestsActive.WithLabelValues(endpoint, method).Inc()
}

// DecrementActiveRequests decrements the active requests gauge
func (svc *MonitoringService) DecrementActiveRequests(endpoint, method string) {
	httpRequestsActive.WithLabelValues(endpoint, method).Dec()
}

func (svc *MonitoringService) AnswerRecorded(category string, correct bool) {
	result := "incorrect"
	if correct {
		result = "correct"
	}
	quizAnswersTotal.WithLabelValues(category, result).Inc()
}

func (svc *MonitoringService) LevelUp() {
	quizLevelUpsTotal.Inc()
}

func (svc *MonitoringService) BadgeUnlocked(badgeID string) {
	quizBadgesUnlockedTotal.WithLabelValues(badgeID).Inc()
}

func (svc *MonitoringService) MissRecorded() {
	quizMissedRecordedTotal.Inc()
}

func (svc *MonitoringService) ReviewGraduated() {
	quizReviewGraduationsTotal.Inc()
}

func (svc *MonitoringService) SessionStarted(mode string) {
	quizSessionsStartedTotal.WithLabelValues(mode).Inc()
}

// MonitoringMiddleware creates a Fiber middleware for monitoring HTTP requests
func MonitoringMiddleware(monitoringSvc *MonitoringService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Skip metrics endpoint
		if c.Path() == "/metrics" {
			return c.Next()
		}

		start := time.Now()
		method := c.Method()

		monitoringSvc.IncrementActiveRequests(activeEndpointLabel, method)
		defer monitoringSvc.DecrementActiveRequests(activeEndpointLabel, method)

		err := c.Next()

		// The matched route is only known once the stack has run.
		endpoint := c.Route().Path
		duration := time.Since(start)
		status := strconv.Itoa(responseStatus(c, err))
		responseSize := len(c.Response().Body())

		// Record metrics
		monitoringSvc.RecordRequest(method, endpoint, status, duration, responseSize)

		return err
	}
}

// responseStatus is the status the app's error handler will write for err.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if appErr, ok := shared.GetAppError(err); ok {
		return appErr.StatusCode
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
