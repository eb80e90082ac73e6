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

package metrics

import (
	"testing"
	"time"

	"github.com/crossplane/crossplane-runtime/v2/pkg/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"

	"github.com/wc-toolkit/cem-sorter/pkg/config"
	xperrors "github.com/wc-toolkit/cem-sorter/pkg/errors"
	"github.com/wc-toolkit/cem-sorter/pkg/sorter"
)

func TestRecord(t *testing.T) {
	rec, err := NewRecorder(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewRecorder(...): unexpected error: %v", err)
	}
	rec.Record(sorter.Stats{
		Modules: 1,
		Fields: map[string]sorter.FieldStats{
			sorter.FieldModules: {Collections: 1, Entities: 2, Reordered: 1},
			sorter.FieldMembers: {Collections: 3, Entities: 5},
		},
	}, 10*time.Millisecond, nil)
	rec.Record(sorter.Stats{}, time.Millisecond, xperrors.NewSerializationError(nil, "cycle"))
	rec.Record(sorter.Stats{}, time.Millisecond, errors.Wrap(xperrors.NewIOError(nil, "out", "cannot write"), "store"))
	rec.Record(sorter.Stats{}, time.Millisecond, errors.New("boom"))

	cases := map[string]struct {
		c    prometheus.Collector
		want float64
	}{
		"RunsSuccess":          {c: rec.Runs.WithLabelValues(resultSuccess), want: 1},
		"RunsSerialization":    {c: rec.Runs.WithLabelValues(resultSerialization), want: 1},
		"RunsIO":               {c: rec.Runs.WithLabelValues(resultIO), want: 1},
		"RunsError":            {c: rec.Runs.WithLabelValues(resultError), want: 1},
		"ModulesCollections":   {c: rec.Collections.WithLabelValues(sorter.FieldModules), want: 1},
		"ModulesEntities":      {c: rec.Entities.WithLabelValues(sorter.FieldModules), want: 2},
		"ModulesReordered":     {c: rec.Reordered.WithLabelValues(sorter.FieldModules), want: 1},
		"MembersCollections":   {c: rec.Collections.WithLabelValues(sorter.FieldMembers), want: 3},
		"MembersNotReordered":  {c: rec.Reordered.WithLabelValues(sorter.FieldMembers), want: 0},
		"MembersEntitiesTotal": {c: rec.Entities.WithLabelValues(sorter.FieldMembers), want: 5},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, testutil.ToFloat64(tc.c)); diff != "" {
				t.Errorf("Record(...): -want, +got:\n%s", diff)
			}
		})
	}
	if diff := cmp.Diff(1, testutil.CollectAndCount(rec.Duration)); diff != "" {
		t.Errorf("Record(...) duration: -want, +got:\n%s", diff)
	}
}

func TestNewRecorderTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewRecorder(reg); err != nil {
		t.Fatalf("NewRecorder(...): unexpected error: %v", err)
	}
	if _, err := NewRecorder(reg); err == nil {
		t.Errorf("NewRecorder(...): registering twice with the same registry should fail")
	}
}

func TestRecorderWithSorter(t *testing.T) {
	rec, err := NewRecorder(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewRecorder(...): unexpected error: %v", err)
	}
	s := sorter.New(sorter.WithLogger(logging.NewNopLogger()), sorter.WithFs(afero.NewMemMapFs()), sorter.WithRecorder(rec))
	doc := map[string]any{"modules": []any{map[string]any{"path": "z.js"}, map[string]any{"path": "a.js"}}}
	if _, err := s.Sort(doc, config.Options{}); err != nil {
		t.Fatalf("Sort(...): unexpected error: %v", err)
	}
	if diff := cmp.Diff(float64(1), testutil.ToFloat64(rec.Reordered.WithLabelValues(sorter.FieldModules))); diff != "" {
		t.Errorf("Sort(...) reordered modules: -want, +got:\n%s", diff)
	}
	if diff := cmp.Diff(float64(1), testutil.ToFloat64(rec.Runs.WithLabelValues(resultSuccess))); diff != "" {
		t.Errorf("Sort(...) runs: -want, +got:\n%s", diff)
	}
}
