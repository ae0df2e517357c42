package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|invalidated
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var (
	UserLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_lookups_total",
			Help: "Existence checks against the user service",
		},
		[]string{"result"}, // ok|invalid|unreachable
	)
)

// MustRegister — регистрирует коллекторы; повторная регистрация не считается
// ошибкой (Bootstrap и тесты могут вызывать её несколько раз за процесс).
func MustRegister() {
	for _, c := range []prometheus.Collector{CacheOps, CacheSize, UserLookups} {
		if err := prometheus.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			panic(err)
		}
	}
}
