// SPDX-FileCopyrightText: 2026 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

// Package manifest reads, writes and copies Custom Elements Manifest
// documents in their generic JSON form.
package manifest

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

const (
	errFmtReadFile  = "cannot read the manifest file %s"
	errRead         = "cannot read the manifest"
	errParseJSON    = "cannot parse the manifest as JSON"
	errYAMLToJSON   = "cannot convert the YAML manifest to JSON"
	errMarshalJSON  = "cannot marshal the manifest to JSON"
	errIndentJSON   = "cannot indent the manifest JSON"
	errJSONToYAML   = "cannot convert the manifest to YAML"
	errFmtBadFormat = "unknown output format %q"
)

var byteOrderMark = []byte("\ufeff")

// Format is a serialization format for manifests.
type Format string

const (
	// FormatJSON is two-space indented JSON with sorted object keys.
	FormatJSON Format = "json"
	// FormatYAML is YAML with sorted object keys.
	FormatYAML Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{string(FormatJSON), string(FormatYAML)}

// Parse decodes a manifest given either as JSON or as YAML. The result is
// built from map[string]any, []any, string, bool, json.Number and nil.
func Parse(data []byte) (any, error) {
	data = bytes.TrimPrefix(data, byteOrderMark)
	if !isJSON(data) {
		j, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, errors.Wrap(err, errYAMLToJSON)
		}
		data = j
	}
	var doc any
	if err := Parser.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errParseJSON)
	}
	return doc, nil
}

// Decode reads and parses a manifest from r.
func Decode(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errRead)
	}
	return Parse(data)
}

// Read reads and parses the manifest file at path on fs.
func Read(fs afero.Fs, path string) (any, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errFmtReadFile, path)
	}
	doc, err := Parse(data)
	return doc, errors.Wrapf(err, errFmtReadFile, path)
}

// Marshal serializes doc in the given format. JSON output is indented with
// two spaces and carries no trailing newline.
func Marshal(doc any, f Format) ([]byte, error) {
	switch f {
	case FormatJSON, "":
		b, err := Printer.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, errMarshalJSON)
		}
		buf := &bytes.Buffer{}
		err = json.Indent(buf, b, "", "  ")
		return buf.Bytes(), errors.Wrap(err, errIndentJSON)
	case FormatYAML:
		j, err := Printer.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, errMarshalJSON)
		}
		y, err := yaml.JSONToYAML(j)
		return y, errors.Wrap(err, errJSONToYAML)
	default:
		return nil, errors.Errorf(errFmtBadFormat, f)
	}
}

// isJSON reports whether data looks like a JSON object or array.
func isJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}
