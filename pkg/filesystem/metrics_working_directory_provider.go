package filesystem

import (
	"sync"
	"time"

	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"
	"github.com/prometheus/client_golang/prometheus"

	"google.golang.org/grpc/status"
)

var (
	workingDirectoryProviderPrometheusMetrics sync.Once

	workingDirectoryProviderOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "filesystem",
			Name:      "working_directory_provider_operations_total",
			Help:      "Total number of working directory lookups, partitioned by gRPC status code.",
		},
		[]string{"name", "grpc_code"})
	workingDirectoryProviderOperationsDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "filesystem",
			Name:      "working_directory_provider_operations_duration_seconds",
			Help:      "Amount of time spent per working directory lookup, in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 7),
		},
		[]string{"name"})
)

type metricsWorkingDirectoryProvider struct {
	base                      path.WorkingDirectoryProvider
	name                      string
	operationsDurationSeconds prometheus.Observer
}

// NewMetricsWorkingDirectoryProvider creates a decorator for
// WorkingDirectoryProvider that exposes the number of lookups and
// their duration as Prometheus metrics.
func NewMetricsWorkingDirectoryProvider(base path.WorkingDirectoryProvider, name string) path.WorkingDirectoryProvider {
	workingDirectoryProviderPrometheusMetrics.Do(func() {
		prometheus.MustRegister(workingDirectoryProviderOperationsTotal)
		prometheus.MustRegister(workingDirectoryProviderOperationsDurationSeconds)
	})

	return &metricsWorkingDirectoryProvider{
		base:                      base,
		name:                      name,
		operationsDurationSeconds: workingDirectoryProviderOperationsDurationSeconds.WithLabelValues(name),
	}
}

func (wdp *metricsWorkingDirectoryProvider) GetWorkingDirectory() (path.PortablePath, error) {
	timeStart := time.Now()
	workingDirectory, err := wdp.base.GetWorkingDirectory()
	wdp.operationsDurationSeconds.Observe(time.Since(timeStart).Seconds())
	workingDirectoryProviderOperationsTotal.WithLabelValues(wdp.name, status.Code(err).String()).Inc()
	return workingDirectory, err
}
