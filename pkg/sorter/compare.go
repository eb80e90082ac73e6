// SPDX-FileCopyrightText: 2026 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

package sorter

import (
	"encoding/json"
	"math"
	"reflect"
	"slices"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns the collator names are ordered with: the CLDR root
// collation at its default (tertiary) strength. Base letters are compared
// first, then accents, then case, so "apple" < "banana" < "Banana" and
// "resume" < "résumé" < "rows". A collator keeps internal buffers and must
// not be shared between concurrent sort runs.
func newCollator() *collate.Collator {
	return collate.New(language.Und)
}

type entity struct {
	value      any
	name       string
	deprecated bool
	index      int
}

// sortEntities orders items in place by the string at key, placing
// deprecated items last if deprecatedLast is set. Items with equal keys and
// deprecation keep their relative order. An item whose key is missing, or is
// not a string, sorts as if its key were the empty string. It returns
// whether the order of items changed.
func sortEntities(c *collate.Collator, items []any, key string, deprecatedLast bool) bool {
	entities := make([]entity, len(items))
	for i, v := range items {
		entities[i] = entity{
			value:      v,
			name:       stringField(v, key),
			deprecated: deprecatedLast && isDeprecated(v),
			index:      i,
		}
	}
	slices.SortStableFunc(entities, func(a, b entity) int {
		if a.deprecated != b.deprecated {
			if a.deprecated {
				return 1
			}
			return -1
		}
		return c.CompareString(a.name, b.name)
	})
	changed := false
	for i, e := range entities {
		items[i] = e.value
		changed = changed || e.index != i
	}
	return changed
}

func stringField(v any, key string) string {
	m, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// isDeprecated reports whether the deprecated marker of v is truthy: true,
// a non-empty string, a non-zero number, or any object or array.
func isDeprecated(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	switch d := m[FieldDeprecated].(type) {
	case nil:
		return false
	case bool:
		return d
	case string:
		return d != ""
	case json.Number:
		f, err := strconv.ParseFloat(string(d), 64)
		return err == nil && f != 0 && !math.IsNaN(f)
	case map[string]any, []any:
		return true
	}
	rv := reflect.ValueOf(m[FieldDeprecated])
	switch rv.Kind() { //nolint:exhaustive // every other kind is truthy
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0 && !math.IsNaN(rv.Float())
	default:
		return true
	}
}
