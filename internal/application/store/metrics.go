package store

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Resultados posibles de una sincronización con el adaptador.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomePanic   = "panic"
	OutcomeSkipped = "skipped"
)

// Metrics contadores de sincronización del store.
type Metrics struct {
	Syncs *prometheus.CounterVec
}

// NewMetrics crea los contadores y los registra en reg (nil = sin registrar).
// Si ya había un colector igual registrado se reutiliza.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	syncs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "erp_store_sync_total",
		Help: "Sincronizaciones del store con el adaptador de datos, por entidad, operación y resultado.",
	}, []string{"entity", "operation", "outcome"})

	if reg != nil {
		if err := reg.Register(syncs); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
					syncs = existing
				}
			}
		}
	}
	return &Metrics{Syncs: syncs}
}

func (m *Metrics) observe(entity, operation, outcome string) {
	m.Syncs.WithLabelValues(entity, operation, outcome).Inc()
}
