// SPDX-FileCopyrightText: 2026 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/crossplane/crossplane-runtime/v2/pkg/fieldpath"

	xperrors "github.com/wc-toolkit/cem-sorter/pkg/errors"
)

const (
	errFmtCycle          = "cannot copy the manifest: cycle detected at %q"
	errFmtUnsupported    = "cannot copy the manifest: value of type %T at %q has no JSON representation"
	errFmtNonFinite      = "cannot copy the manifest: non-finite number at %q"
	errFmtNormalizeValue = "cannot copy the manifest: cannot normalize value of type %T at %q"
)

// Copy returns a deep copy of doc that shares no map or slice with it.
// Generic JSON values (map[string]any, []any, strings, booleans, numbers and
// nil) are copied structurally. Any other value is first normalized into the
// generic form through its JSON encoding. Values that cannot be represented
// as JSON, and cyclic structures, result in a serialization error.
func Copy(doc any) (any, error) {
	c := &copier{ancestors: make(map[uintptr]struct{})}
	return c.copy(doc, nil)
}

type copier struct {
	// maps and slices on the path from the root to the value being copied
	ancestors map[uintptr]struct{}
}

func (c *copier) copy(v any, path fieldpath.Segments) (any, error) { //nolint:gocyclo // a type switch over the JSON value kinds
	switch t := v.(type) {
	case nil, bool, string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return t, nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, xperrors.NewSerializationError(nil, errFmtNonFinite, path.String())
		}
		return t, nil
	case float32:
		if math.IsNaN(float64(t)) || math.IsInf(float64(t), 0) {
			return nil, xperrors.NewSerializationError(nil, errFmtNonFinite, path.String())
		}
		return t, nil
	case map[string]any:
		if t == nil {
			return t, nil
		}
		leave, err := c.enter(reflect.ValueOf(t).Pointer(), path)
		if err != nil {
			return nil, err
		}
		defer leave()
		out := make(map[string]any, len(t))
		for k, e := range t {
			ce, err := c.copy(e, append(path, fieldpath.Field(k))) //nolint:gocritic // each child gets its own path
			if err != nil {
				return nil, err
			}
			out[k] = ce
		}
		return out, nil
	case []any:
		if t == nil {
			return t, nil
		}
		if len(t) > 0 {
			leave, err := c.enter(reflect.ValueOf(t).Pointer(), path)
			if err != nil {
				return nil, err
			}
			defer leave()
		}
		out := make([]any, len(t))
		for i, e := range t {
			ce, err := c.copy(e, append(path, fieldpath.Segment{Type: fieldpath.SegmentIndex, Index: uint(i)})) //nolint:gocritic // each child gets its own path
			if err != nil {
				return nil, err
			}
			out[i] = ce
		}
		return out, nil
	default:
		return c.normalize(v, path)
	}
}

// enter records a map or slice as an ancestor of the values below it and
// returns the function that removes it again.
func (c *copier) enter(p uintptr, path fieldpath.Segments) (func(), error) {
	if _, ok := c.ancestors[p]; ok {
		return nil, xperrors.NewSerializationError(nil, errFmtCycle, path.String())
	}
	c.ancestors[p] = struct{}{}
	return func() { delete(c.ancestors, p) }, nil
}

// normalize converts a typed Go value into the generic JSON form and copies
// the result.
func (c *copier) normalize(v any, path fieldpath.Segments) (any, error) {
	switch reflect.ValueOf(v).Kind() { //nolint:exhaustive // only the kinds with no JSON representation matter here
	case reflect.Chan, reflect.Func, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return nil, xperrors.NewSerializationError(nil, errFmtUnsupported, v, path.String())
	}
	b, err := Parser.Marshal(v)
	if err != nil {
		return nil, xperrors.NewSerializationError(err, errFmtNormalizeValue, v, path.String())
	}
	var generic any
	if err := Parser.Unmarshal(b, &generic); err != nil {
		return nil, xperrors.NewSerializationError(err, errFmtNormalizeValue, v, path.String())
	}
	return c.copy(generic, path)
}
