// Package metrics は生成結果の Prometheus メトリクスを定義します。
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// 生成結果のラベル値
const (
	OutcomeRemote   = "remote"
	OutcomeFallback = "fallback"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Recorder は生成パイプラインの計測を抽象化します。
type Recorder interface {
	ObserveOutcome(outcome string)
	ObserveRemoteCall(success bool, elapsed time.Duration)
}

// Metrics は Prometheus のコレクター群です。
type Metrics struct {
	generations *prometheus.CounterVec
	remoteCalls *prometheus.HistogramVec
}

// New はコレクターを生成し、reg に登録します。
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "decline_mail",
			Name:      "generations_total",
			Help:      "Number of decline email generations by outcome.",
		}, []string{"outcome"}),
		remoteCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "decline_mail",
			Name:      "remote_call_duration_seconds",
			Help:      "Latency of completion API calls.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
		}, []string{"success"}),
	}

	for _, c := range []prometheus.Collector{m.generations, m.remoteCalls} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) ObserveOutcome(outcome string) {
	m.generations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRemoteCall(success bool, elapsed time.Duration) {
	label := "false"
	if success {
		label = "true"
	}
	m.remoteCalls.WithLabelValues(label).Observe(elapsed.Seconds())
}

// Noop は何も記録しない Recorder です。CLI やテストで使用します。
type Noop struct{}

func (Noop) ObserveOutcome(string)                 {}
func (Noop) ObserveRemoteCall(bool, time.Duration) {}
