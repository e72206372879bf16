package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterLogins              *prometheus.CounterVec
	CounterSignups             prometheus.Counter
	CounterSessionsCleaned     prometheus.Counter
	CounterWorkoutsCompleted   prometheus.Counter
	CounterFoodLogs            *prometheus.CounterVec
	CounterMealAnalyses        *prometheus.CounterVec
	CounterSkinStepsToggled    prometheus.Counter
	CounterProgressPhotos      prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistMealAnalysisDuration prometheus.Histogram
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("wellness", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("wellness", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterLogins := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "logins",
		Help:      "The total number of login attempts",
	}, []string{"result"})
	counterSignups := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "signups",
		Help:      "The total number of created accounts",
	})
	counterSessionsCleaned := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions_cleaned",
		Help:      "The total number of expired sessions removed",
	})
	counterWorkoutsCompleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_completed",
		Help:      "The total number of finished workouts",
	})
	counterFoodLogs := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "food_logs",
		Help:      "The total number of added food logs",
	}, []string{"source"})
	counterMealAnalyses := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "meal_analyses",
		Help:      "The total number of meal photo analyses",
	}, []string{"result"})
	counterSkinStepsToggled := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "skin_steps_toggled",
		Help:      "The total number of toggled skincare steps",
	})
	counterProgressPhotos := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "progress_photos",
		Help:      "The total number of uploaded progress photos",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histMealAnalysisDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "meal_analysis_duration_seconds",
		Help:      "Duration of a single meal photo analysis in seconds",
		Buckets:   []float64{.1, .25, .5, 1, 2, 4, 8, 16, 32},
	})
	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		CounterLogins:              counterLogins,
		CounterSignups:             counterSignups,
		CounterSessionsCleaned:     counterSessionsCleaned,
		CounterWorkoutsCompleted:   counterWorkoutsCompleted,
		CounterFoodLogs:            counterFoodLogs,
		CounterMealAnalyses:        counterMealAnalyses,
		CounterSkinStepsToggled:    counterSkinStepsToggled,
		CounterProgressPhotos:      counterProgressPhotos,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		HistMealAnalysisDuration:   histMealAnalysisDuration,
		HistogramRequestDuration:   histogramRequestDuration,
	}
}
