package transport

import (
	"errors"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests *prometheus.CounterVec
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bearer",
		Subsystem: "transport",
		Name:      "requests_total",
		Help:      "Intercepted requests by decision outcome.",
	}, []string{"outcome"})

	if err := registerer.Register(requests); err != nil {
		var registered prometheus.AlreadyRegisteredError
		if !errors.As(err, &registered) {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		existing, ok := registered.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		requests = existing
	}
	return &metrics{requests: requests}, nil
}
