// SPDX-FileCopyrightText: 2026 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

package sorter

// Fields of the manifest the sorter reads or sorts.
const (
	FieldModules      = "modules"
	FieldPath         = "path"
	FieldExports      = "exports"
	FieldDeclarations = "declarations"
	FieldMembers      = "members"
	FieldParameters   = "parameters"
	FieldName         = "name"
	FieldKind         = "kind"
	FieldDeprecated   = "deprecated"
)

// SatelliteFields are the array fields of a declaration, besides members,
// that hold named entities and are always sorted.
var SatelliteFields = []string{
	"attributes",
	"events",
	"slots",
	"cssCustomProperties",
	"cssParts",
	"cssStates",
	"dependencies",
}

// FieldTable is the ordered set of declaration fields sorted as named-entity
// collections in addition to members.
type FieldTable []string

// NewFieldTable returns the built-in satellite fields followed by the given
// custom fields, in order and without duplicates.
func NewFieldTable(custom ...string) FieldTable {
	seen := make(map[string]struct{}, len(SatelliteFields)+len(custom))
	t := make(FieldTable, 0, len(SatelliteFields)+len(custom))
	for _, f := range append(append([]string{}, SatelliteFields...), custom...) {
		if _, ok := seen[f]; ok || f == "" || f == FieldMembers {
			continue
		}
		seen[f] = struct{}{}
		t = append(t, f)
	}
	return t
}
