package aggchainproofservice

import (
	"time"

	"github.com/agglayer/aggkit-prover/log"
	"github.com/agglayer/aggkit-prover/prometheus"
	prometheusClient "github.com/prometheus/client_golang/prometheus"
)

const (
	prefix            = "aggchain_proof_service_"
	requestsTotal     = prefix + "requests_total"
	requestDuration   = prefix + "request_duration_seconds"
	requestsInFlight  = prefix + "requests_in_flight"
	outcomeSuccess    = "success"
	outcomeProposer   = "proposer_error"
	outcomeBuilder    = "builder_error"
	provingTimeBucket = 60
)

// RegisterMetrics registers the metrics of the aggchain proof service
func RegisterMetrics() {
	prometheus.RegisterCounterVecs(prometheus.CounterVecOpts{
		CounterOpts: prometheusClient.CounterOpts{
			Name: requestsTotal,
			Help: "[AGGCHAINPROOFSERVICE] number of proof requests by outcome",
		},
		Labels: []string{"outcome"},
	})
	prometheus.RegisterHistogramVecs(prometheus.HistogramVecOpts{
		HistogramOpts: prometheusClient.HistogramOpts{
			Name:    requestDuration,
			Help:    "[AGGCHAINPROOFSERVICE] time to serve a proof request by outcome",
			Buckets: prometheusClient.ExponentialBuckets(provingTimeBucket, 2, 8),
		},
		Labels: []string{"outcome"},
	})
	prometheus.RegisterGauges(prometheusClient.GaugeOpts{
		Name: requestsInFlight,
		Help: "[AGGCHAINPROOFSERVICE] number of proof requests being served",
	})
	log.Info("Registered prometheus aggchain proof service metrics")
}

func requestStarted() {
	prometheus.GaugeInc(requestsInFlight)
}

func requestDone(outcome string, started time.Time) {
	prometheus.GaugeDec(requestsInFlight)
	prometheus.CounterVecInc(requestsTotal, outcome)
	prometheus.HistogramVecObserve(requestDuration, outcome, time.Since(started).Seconds())
}
