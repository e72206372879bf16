package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry returns a registry with the runtime collectors, a constant
// wellness_version_info series labeled by version, and any extra collectors
// (the pgx pool stats in production).
func NewRegistry(version string, extraCollectors ...prometheus.Collector) *prometheus.Registry {
	if version == "" {
		version = "dev"
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   "wellness",
			Name:        "version_info",
			Help:        "Running service version, always 1.",
			ConstLabels: prometheus.Labels{"version": version},
		}, func() float64 { return 1 }),
	)
	reg.MustRegister(extraCollectors...)
	return reg
}
