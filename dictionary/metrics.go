package dictionary

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dictionaryEntries = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "sorted_dictionary_entries",
		Help: "The number of entries currently held by the dictionary",
	}, []string{"dictionary", "kind"})

	dictionaryCapacity = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "sorted_dictionary_capacity",
		Help: "The current capacity of an array-backed dictionary",
	}, []string{"dictionary"})

	dictionaryResizes = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorted_dictionary_resizes_total",
		Help: "The total number of times an array-backed dictionary doubled its capacity",
	}, []string{"dictionary"})

	dictionaryCapacityExceeded = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorted_dictionary_capacity_exceeded_total",
		Help: "The total number of adds rejected because the dictionary could not grow",
	}, []string{"dictionary"})
)

const (
	kindArray  = "array"
	kindLinked = "linked"
)

func (c *config) recordSize(kind string, size int) {
	if c.metrics {
		dictionaryEntries.WithLabelValues(c.name, kind).Set(float64(size))
	}
}

func (c *config) recordCapacity(capacity int) {
	if c.metrics {
		dictionaryCapacity.WithLabelValues(c.name).Set(float64(capacity))
	}
}

func (c *config) recordResize() {
	if c.metrics {
		dictionaryResizes.WithLabelValues(c.name).Inc()
	}
}

func (c *config) recordCapacityExceeded() {
	if c.metrics {
		dictionaryCapacityExceeded.WithLabelValues(c.name).Inc()
	}
}
