// Package metrics 提供 Prometheus helper，包含定价服务的 counter/histogram 模板
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 指标集合
type Metrics struct {
	registry *prometheus.Registry

	// HTTP 请求计数
	HTTPRequestsTotal prometheus.Counter
	// HTTP 请求耗时
	HTTPRequestDuration prometheus.Histogram

	// 解析定价计算计数
	AnalyticPricingsTotal prometheus.Counter
	// 解析定价计算耗时
	AnalyticPricingDuration prometheus.Histogram

	// 蒙特卡洛模拟计数
	SimulationsTotal prometheus.Counter
	// 蒙特卡洛模拟耗时
	SimulationDuration prometheus.Histogram
	// 累计模拟路径数
	SimulationPathsTotal prometheus.Counter

	// 风险计算计数
	RiskCalculationsTotal prometheus.Counter
	// 风险计算耗时
	RiskCalculationDuration prometheus.Histogram
}

// New 创建指标实例并注册到独立 registry
func New(serviceName string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quant",
			Subsystem: serviceName,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}),
		HTTPRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quant",
			Subsystem: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		AnalyticPricingsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quant",
			Subsystem: serviceName,
			Name:      "analytic_pricings_total",
			Help:      "Total Black-Scholes pricing calculations",
		}),
		AnalyticPricingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quant",
			Subsystem: serviceName,
			Name:      "analytic_pricing_duration_seconds",
			Help:      "Black-Scholes pricing duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		SimulationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quant",
			Subsystem: serviceName,
			Name:      "simulations_total",
			Help:      "Total Monte Carlo pricing simulations",
		}),
		SimulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quant",
			Subsystem: serviceName,
			Name:      "simulation_duration_seconds",
			Help:      "Monte Carlo simulation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		SimulationPathsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quant",
			Subsystem: serviceName,
			Name:      "simulation_paths_total",
			Help:      "Total simulated GBM paths",
		}),

		RiskCalculationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quant",
			Subsystem: serviceName,
			Name:      "risk_calculations_total",
			Help:      "Total VaR/ES calculations",
		}),
		RiskCalculationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quant",
			Subsystem: serviceName,
			Name:      "risk_calculation_duration_seconds",
			Help:      "VaR/ES calculation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AnalyticPricingsTotal,
		m.AnalyticPricingDuration,
		m.SimulationsTotal,
		m.SimulationDuration,
		m.SimulationPathsTotal,
		m.RiskCalculationsTotal,
		m.RiskCalculationDuration,
	)

	return m
}

// Handler 返回 /metrics 的 HTTP handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
