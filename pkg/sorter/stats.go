// SPDX-FileCopyrightText: 2026 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

package sorter

// FieldStats counts the collections of one field sorted during a run.
type FieldStats struct {
	// Collections is the number of collections sorted.
	Collections int
	// Entities is the number of entities in the sorted collections.
	Entities int
	// Reordered is the number of collections whose order changed.
	Reordered int
}

// Stats summarizes a sort run.
type Stats struct {
	// Modules is the number of modules visited.
	Modules int
	// Declarations is the number of declarations visited.
	Declarations int
	// Fields holds the statistics of each sorted field, keyed by field name.
	Fields map[string]FieldStats
}

// Canonical reports whether the run found every collection already in
// canonical order.
func (s Stats) Canonical() bool {
	for _, f := range s.Fields {
		if f.Reordered > 0 {
			return false
		}
	}
	return true
}

func (s *Stats) add(field string, entities int, reordered bool) {
	if s.Fields == nil {
		s.Fields = make(map[string]FieldStats)
	}
	f := s.Fields[field]
	f.Collections++
	f.Entities += entities
	if reordered {
		f.Reordered++
	}
	s.Fields[field] = f
}
