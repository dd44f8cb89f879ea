// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	gets    prometheus.Counter
	puts    prometheus.Counter
	deletes prometheus.Counter
}

func newMetrics() (*prometheus.Registry, *metrics, error) {
	r := prometheus.NewRegistry()
	m := &metrics{
		gets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "gets",
			Help:      "number of reads",
		}),
		puts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "puts",
			Help:      "number of writes",
		}),
		deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "deletes",
			Help:      "number of deletes",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.gets),
		r.Register(m.puts),
		r.Register(m.deletes),
	)
	return r, m, errs.Err
}
