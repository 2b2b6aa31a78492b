package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TicketsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_tickets_created_total",
		Help: "The total number of tickets admitted by the reservation ledger",
	})
	TicketsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_tickets_cancelled_total",
		Help: "The total number of tickets cancelled",
	})
	CapacityRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_capacity_rejections_total",
		Help: "The total number of create/update attempts rejected by the capacity check",
	})
	OversoldTours = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ledger_oversold_tours",
		Help: "Tours whose committed quantity exceeds capacity, as seen by the last audit pass",
	})
)
