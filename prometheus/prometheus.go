package prometheus

import (
	"errors"
	"sync"

	"github.com/agglayer/aggkit-prover/log"
	"github.com/prometheus/client_golang/prometheus"
)

// CounterVecOpts describes a counter partitioned by one label
type CounterVecOpts struct {
	prometheus.CounterOpts
	Labels []string
}

// HistogramVecOpts describes a histogram partitioned by one label
type HistogramVecOpts struct {
	prometheus.HistogramOpts
	Labels []string
}

var (
	storageMutex  sync.RWMutex
	registerer    prometheus.Registerer
	gauges        map[string]prometheus.Gauge
	counterVecs   map[string]*prometheus.CounterVec
	histogramVecs map[string]*prometheus.HistogramVec
)

// Init enables metrics on the default prometheus registerer.
// Until it is called every helper of this package is a no-op.
func Init() {
	InitWithRegisterer(prometheus.DefaultRegisterer)
}

// InitWithRegisterer enables metrics on r
func InitWithRegisterer(r prometheus.Registerer) {
	storageMutex.Lock()
	defer storageMutex.Unlock()
	registerer = r
	gauges = make(map[string]prometheus.Gauge)
	counterVecs = make(map[string]*prometheus.CounterVec)
	histogramVecs = make(map[string]*prometheus.HistogramVec)
}

func register[T prometheus.Collector](name string, collector T) T {
	if err := registerer.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing
			}
		}
		log.Errorf("failed to register metric %s: %v", name, err)
	}
	return collector
}

// RegisterGauges registers the provided gauge metrics
func RegisterGauges(opts ...prometheus.GaugeOpts) {
	storageMutex.Lock()
	defer storageMutex.Unlock()
	if registerer == nil {
		return
	}
	for _, opt := range opts {
		if _, ok := gauges[opt.Name]; ok {
			continue
		}
		gauges[opt.Name] = register(opt.Name, prometheus.NewGauge(opt))
	}
}

// RegisterCounterVecs registers the provided counter vec metrics
func RegisterCounterVecs(opts ...CounterVecOpts) {
	storageMutex.Lock()
	defer storageMutex.Unlock()
	if registerer == nil {
		return
	}
	for _, opt := range opts {
		if _, ok := counterVecs[opt.Name]; ok {
			continue
		}
		counterVecs[opt.Name] = register(opt.Name, prometheus.NewCounterVec(opt.CounterOpts, opt.Labels))
	}
}

// RegisterHistogramVecs registers the provided histogram vec metrics
func RegisterHistogramVecs(opts ...HistogramVecOpts) {
	storageMutex.Lock()
	defer storageMutex.Unlock()
	if registerer == nil {
		return
	}
	for _, opt := range opts {
		if _, ok := histogramVecs[opt.Name]; ok {
			continue
		}
		histogramVecs[opt.Name] = register(opt.Name, prometheus.NewHistogramVec(opt.HistogramOpts, opt.Labels))
	}
}

// GaugeInc increments the gauge name
func GaugeInc(name string) {
	if gauge, ok := Gauge(name); ok {
		gauge.Inc()
	}
}

// GaugeDec decrements the gauge name
func GaugeDec(name string) {
	if gauge, ok := Gauge(name); ok {
		gauge.Dec()
	}
}

// CounterVecInc increments the counter name for label
func CounterVecInc(name, label string) {
	if counterVec, ok := CounterVec(name); ok {
		counterVec.WithLabelValues(label).Inc()
	}
}

// HistogramVecObserve records value in the histogram name for label
func HistogramVecObserve(name, label string, value float64) {
	if histogramVec, ok := HistogramVec(name); ok {
		histogramVec.WithLabelValues(label).Observe(value)
	}
}

// Gauge returns the registered gauge name
func Gauge(name string) (prometheus.Gauge, bool) {
	storageMutex.RLock()
	defer storageMutex.RUnlock()
	gauge, ok := gauges[name]
	return gauge, ok
}

// CounterVec returns the registered counter vec name
func CounterVec(name string) (*prometheus.CounterVec, bool) {
	storageMutex.RLock()
	defer storageMutex.RUnlock()
	counterVec, ok := counterVecs[name]
	return counterVec, ok
}

// HistogramVec returns the registered histogram vec name
func HistogramVec(name string) (*prometheus.HistogramVec, bool) {
	storageMutex.RLock()
	defer storageMutex.RUnlock()
	histogramVec, ok := histogramVecs[name]
	return histogramVec, ok
}
