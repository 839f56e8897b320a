package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// =============================================================================
// Metric Definitions
// =============================================================================

const metricsNamespace = "adleman"

// Stage label values.
const (
	StageGenerate = "generate"
	StageSample   = "sample"
	StageSearch   = "search"
)

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics is a [PipelineHooks] implementation that records Prometheus
// metrics for each stage.
//
// A CLI run is too short-lived to be scraped, so the usual consumer writes
// the registry to a node_exporter textfile with [WriteTextfile].
type Metrics struct {
	StagesTotal   *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec
	Nodes         prometheus.Gauge
	Edges         prometheus.Gauge
	Paths         prometheus.Gauge
}

// NewMetrics creates the pipeline metrics and registers them with reg.
// It panics if registration fails, as prometheus.MustRegister does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "stages_total",
				Help:      "Completed pipeline stages by stage and status",
			},
			[]string{"stage", "status"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "stage_duration_seconds",
				Help:      "Pipeline stage duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 10, 7),
			},
			[]string{"stage"},
		),
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "graph_nodes",
			Help:      "Node count of the last generated graph",
		}),
		Edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "graph_edges",
			Help:      "Edge count of the last sampled edge set",
		}),
		Paths: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "hamiltonian_paths",
			Help:      "Hamiltonian paths found by the last search",
		}),
	}
	reg.MustRegister(m.StagesTotal, m.StageDuration, m.Nodes, m.Edges, m.Paths)
	return m
}

func (m *Metrics) observe(stage string, d time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.StagesTotal.WithLabelValues(stage, status).Inc()
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (m *Metrics) OnGenerateComplete(_ context.Context, nodeCount int, _ uint64, d time.Duration, err error) {
	m.observe(StageGenerate, d, err)
	if err == nil {
		m.Nodes.Set(float64(nodeCount))
	}
}

func (m *Metrics) OnSampleComplete(_ context.Context, edgeCount int, d time.Duration) {
	m.observe(StageSample, d, nil)
	m.Edges.Set(float64(edgeCount))
}

func (m *Metrics) OnSearchStart(context.Context, int, int) {}

func (m *Metrics) OnSearchComplete(_ context.Context, pathCount int, d time.Duration, err error) {
	m.observe(StageSearch, d, err)
	if err == nil {
		m.Paths.Set(float64(pathCount))
	}
}

// WriteTextfile writes every metric gathered by g to path in the Prometheus
// text format. The file is replaced atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
