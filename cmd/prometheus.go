package main

import (
	"doctor/internal/usecasees/structs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Doctor map[structs.MetricConst]prometheus.Counter
}

func (a *App) InitMetrics() {
	metrics := Metrics{Doctor: map[structs.MetricConst]prometheus.Counter{}}

	for _, metric := range []structs.MetricConst{
		structs.MetricIssuesDetected,
		structs.MetricAutoFixSuccess,
		structs.MetricAutoFixFailed,
		structs.MetricEscalations,
		structs.MetricPassCompleted,
	} {
		metrics.Doctor[metric] = promauto.NewCounter(prometheus.CounterOpts{
			Name: metric.ToString(),
			Help: metric.ToString(),
		})
	}

	a.Metrics = &metrics
}
