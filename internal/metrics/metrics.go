// Package metrics provides Prometheus metrics for the quiz server, exposed at
// /metrics when the HTTP transport is active.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuizzesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geoquiz_quizzes_created_total",
		Help: "Total number of quiz sessions created",
	})

	HintsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "geoquiz_hints_served_total",
		Help: "Total number of hints served, by kind",
	}, []string{"kind"})

	AnswersServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geoquiz_answers_served_total",
		Help: "Total number of answers revealed",
	})

	ToolErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "geoquiz_tool_errors_total",
		Help: "Total number of tool calls that returned an error result, by tool",
	}, []string{"tool"})

	GeocodeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geoquiz_geocode_failures_total",
		Help: "Total number of failed reverse-geocode lookups",
	})
)
