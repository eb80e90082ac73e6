// SPDX-FileCopyrightText: 2026 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

package sorter

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/wc-toolkit/cem-sorter/pkg/config"
	xperrors "github.com/wc-toolkit/cem-sorter/pkg/errors"
	"github.com/wc-toolkit/cem-sorter/pkg/manifest"
)

const (
	errFmtMkdir     = "cannot create the output directory %s"
	errFmtWriteFile = "cannot write the sorted manifest to %s"
	errMarshal      = "cannot serialize the sorted manifest"
)

// store writes doc to the file o names, creating the output directory if
// needed, and returns the path of the file.
func (s *Sorter) store(doc any, o config.Options) (string, error) {
	b, err := manifest.Marshal(doc, s.format)
	if err != nil {
		return "", xperrors.NewSerializationError(err, errMarshal)
	}
	if o.OutDir != config.DefaultOutDir {
		if err := s.fs.MkdirAll(o.OutDir, 0o750); err != nil {
			return "", xperrors.NewIOError(err, o.OutDir, errFmtMkdir, o.OutDir)
		}
	}
	path := filepath.Join(o.OutDir, o.FileName)
	if err := afero.WriteFile(s.fs, path, b, 0o644); err != nil { //nolint:gosec // manifests are public build artifacts
		return "", xperrors.NewIOError(err, path, errFmtWriteFile, path)
	}
	return path, nil
}
