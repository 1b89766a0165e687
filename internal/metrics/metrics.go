// Package metrics defines the Prometheus collectors shared by the
// HTTP API and the MCP server.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cloudcompass"

// Outcome labels for tool calls.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var CatalogServices = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Subsystem: "catalog",
	Name:      "services",
	Help:      "Number of services in the loaded catalog",
})

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "api",
	Name:      "requests_total",
	Help:      "Number of HTTP API requests by route and status",
}, []string{"method", "route", "status"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "api",
	Name:      "request_duration_seconds",
	Help:      "HTTP API request latency",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

var ToolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "mcp",
	Name:      "tool_calls_total",
	Help:      "Number of MCP tool calls by tool and outcome",
}, []string{"tool", "outcome"})

var ToolCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "mcp",
	Name:      "tool_call_duration_seconds",
	Help:      "MCP tool call latency",
	Buckets:   prometheus.DefBuckets,
}, []string{"tool"})

var RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "rate_limited_total",
	Help:      "Number of requests rejected by the rate limiter",
}, []string{"server"})

// ObserveRequest records one HTTP API request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveToolCall records one MCP tool call.
func ObserveToolCall(tool string, err error, elapsed time.Duration) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	ToolCalls.WithLabelValues(tool, outcome).Inc()
	ToolCallDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}
