// Copyright 2023 Upbound Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics exposes the statistics of manifest sort runs as
// Prometheus metrics.
package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	xperrors "github.com/wc-toolkit/cem-sorter/pkg/errors"
	"github.com/wc-toolkit/cem-sorter/pkg/sorter"
)

const (
	promNSCEM     = "cem_sorter"
	promSysRun    = "run"
	promSysSorter = "collection"

	resultSuccess       = "success"
	resultSerialization = "serialization_error"
	resultIO            = "io_error"
	resultError         = "error"

	errRegister = "cannot register the sort metrics"
)

// Recorder records sort runs as Prometheus metrics.
type Recorder struct {
	// Runs counts the sort runs by result.
	Runs *prometheus.CounterVec
	// Duration measures in seconds how long sort runs take.
	Duration prometheus.Histogram
	// Collections counts the sorted collections by field.
	Collections *prometheus.CounterVec
	// Entities counts the entities of sorted collections by field.
	Entities *prometheus.CounterVec
	// Reordered counts the sorted collections whose order changed, by field.
	Reordered *prometheus.CounterVec
}

var _ sorter.Recorder = &Recorder{}

// NewRecorder returns a Recorder whose collectors are registered with r.
func NewRecorder(r prometheus.Registerer) (*Recorder, error) {
	rec := &Recorder{
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: promNSCEM,
			Subsystem: promSysRun,
			Name:      "total",
			Help:      "The number of manifest sort runs",
		}, []string{"result"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: promNSCEM,
			Subsystem: promSysRun,
			Name:      "duration_seconds",
			Help:      "Measures in seconds how long it takes to sort a manifest",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		Collections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: promNSCEM,
			Subsystem: promSysSorter,
			Name:      "sorted_total",
			Help:      "The number of named-entity collections sorted",
		}, []string{"field"}),
		Entities: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: promNSCEM,
			Subsystem: promSysSorter,
			Name:      "entities_total",
			Help:      "The number of entities in the sorted collections",
		}, []string{"field"}),
		Reordered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: promNSCEM,
			Subsystem: promSysSorter,
			Name:      "reordered_total",
			Help:      "The number of sorted collections that were not in canonical order",
		}, []string{"field"}),
	}
	for _, c := range []prometheus.Collector{rec.Runs, rec.Duration, rec.Collections, rec.Entities, rec.Reordered} {
		if err := r.Register(c); err != nil {
			return nil, errors.Wrap(err, errRegister)
		}
	}
	return rec, nil
}

// Record implements sorter.Recorder.
func (r *Recorder) Record(stats sorter.Stats, d time.Duration, err error) {
	r.Runs.WithLabelValues(result(err)).Inc()
	r.Duration.Observe(d.Seconds())
	for field, s := range stats.Fields {
		r.Collections.WithLabelValues(field).Add(float64(s.Collections))
		r.Entities.WithLabelValues(field).Add(float64(s.Entities))
		r.Reordered.WithLabelValues(field).Add(float64(s.Reordered))
	}
}

func result(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case xperrors.IsSerialization(err):
		return resultSerialization
	case xperrors.IsIO(err):
		return resultIO
	default:
		return resultError
	}
}
