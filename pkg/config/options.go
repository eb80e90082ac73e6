// SPDX-FileCopyrightText: 2026 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"slices"
	"strings"

	"dario.cat/mergo"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

const (
	// DefaultFileName is the name of the file the command line tool writes
	// the sorted manifest to, unless configured otherwise.
	DefaultFileName = "custom-elements.json"
	// DefaultOutDir is the directory the command line tool writes the sorted
	// manifest to, unless configured otherwise.
	DefaultOutDir = "./"

	// fieldMembers is sorted on its own, with the parameters of methods, and
	// hence cannot be configured as a custom field.
	fieldMembers = "members"

	errFmtReadConfig   = "cannot read the configuration file %s"
	errFmtParseConfig  = "cannot parse the configuration file %s"
	errMergeOptions    = "cannot merge the sort options"
	errFmtEmptyField   = "custom field at index %d is empty"
	errFmtMembersField = "custom field at index %d: %q is always sorted and cannot be configured"
)

// Options configures a sort run. The zero value is usable and sorts without
// moving deprecated entities and without persisting the result.
type Options struct {
	// FileName is the name of the file the sorted manifest is written to.
	// Nothing is written unless both FileName and OutDir are set.
	FileName string `json:"fileName,omitempty"`
	// OutDir is the directory the sorted manifest is written to.
	OutDir string `json:"outdir,omitempty"`
	// DeprecatedLast moves deprecated entities after all non-deprecated
	// entities of the same collection.
	DeprecatedLast bool `json:"deprecatedLast,omitempty"`
	// CustomFields are additional array fields of declarations to sort by
	// name, beyond the built-in attributes, events, slots, CSS and
	// dependency collections.
	CustomFields []string `json:"customFields,omitempty"`
	// Skip disables sorting. The result is an unsorted copy of the input.
	Skip bool `json:"skip,omitempty"`
	// Debug enables progress diagnostics. It never affects the result.
	Debug bool `json:"debug,omitempty"`
}

// Default returns the options a sort run uses for every field the caller
// leaves unset.
func Default() Options {
	return Options{
		CustomFields: []string{},
	}
}

// Merge returns o with every unset field taken from the first of the given
// bases that sets it, and finally from Default. Neither o nor the bases are
// modified, and the result shares no slice with them.
func Merge(o Options, bases ...Options) (Options, error) {
	merged := o
	for _, b := range append(slices.Clone(bases), Default()) {
		if err := mergo.Merge(&merged, b); err != nil {
			return Options{}, errors.Wrap(err, errMergeOptions)
		}
	}
	merged.CustomFields = slices.Clone(merged.CustomFields)
	if merged.CustomFields == nil {
		merged.CustomFields = []string{}
	}
	return merged, nil
}

// Validate reports custom fields that can never be sorted as configured. Such
// fields are ignored by the sorter.
func (o Options) Validate() error {
	for i, f := range o.CustomFields {
		switch {
		case strings.TrimSpace(f) == "":
			return errors.Errorf(errFmtEmptyField, i)
		case f == fieldMembers:
			return errors.Errorf(errFmtMembersField, i, f)
		}
	}
	return nil
}

// Persist reports whether a sort run with these options writes its result
// to the file system.
func (o Options) Persist() bool {
	return o.FileName != "" && o.OutDir != ""
}

// Load reads options from a YAML or JSON configuration file on fs. Unknown
// keys are rejected.
func Load(fs afero.Fs, path string) (Options, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Options{}, errors.Wrapf(err, errFmtReadConfig, path)
	}
	o := Options{}
	if err := yaml.UnmarshalStrict(data, &o); err != nil {
		return Options{}, errors.Wrapf(err, errFmtParseConfig, path)
	}
	return o, nil
}
