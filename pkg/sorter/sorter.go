// SPDX-FileCopyrightText: 2026 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

// Package sorter brings Custom Elements Manifests into a canonical order so
// that regenerated manifests diff cleanly.
//
// A sort run copies the manifest, then orders modules by path and exports,
// declarations, members, method parameters and the satellite collections of
// declarations (attributes, events, slots, CSS custom properties, CSS parts,
// CSS states, dependencies and any configured custom fields) by name. Names
// are compared with the CLDR root collation and ties keep their input order.
// With DeprecatedLast set, deprecated entities follow all others in their
// collection. Entities without a name sort first. The input is never
// modified and no entity is added, dropped or changed.
package sorter

import (
	"os"
	"time"

	"github.com/crossplane/crossplane-runtime/v2/pkg/logging"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/wc-toolkit/cem-sorter/pkg/config"
	"github.com/wc-toolkit/cem-sorter/pkg/log"
	"github.com/wc-toolkit/cem-sorter/pkg/manifest"
)

const (
	// LoggerName is the name of the diagnostics logger of a Sorter.
	LoggerName = "cem-sorter"

	errMergeOptions = "cannot resolve the sort options"
	errCopy         = "cannot copy the manifest"
)

// A Recorder observes the outcome of sort runs.
type Recorder interface {
	// Record is called once per run with the run's statistics, duration and
	// error, if any.
	Record(stats Stats, d time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) Record(Stats, time.Duration, error) {}

// Sorter sorts manifests. A Sorter holds no state between runs and is safe
// for concurrent use if its logger, file system and recorder are.
type Sorter struct {
	logger   logging.Logger
	fs       afero.Fs
	format   manifest.Format
	recorder Recorder
}

// Option configures a Sorter.
type Option func(s *Sorter)

// WithLogger sets the logger debug diagnostics are written to. By default
// they are written to stderr.
func WithLogger(l logging.Logger) Option {
	return func(s *Sorter) {
		s.logger = l
	}
}

// WithFs sets the file system sorted manifests are persisted to. By default
// the operating system's file system is used.
func WithFs(fs afero.Fs) Option {
	return func(s *Sorter) {
		s.fs = fs
	}
}

// WithFormat sets the format sorted manifests are persisted in. The default
// is JSON.
func WithFormat(f manifest.Format) Option {
	return func(s *Sorter) {
		s.format = f
	}
}

// WithRecorder sets the recorder sort runs are reported to.
func WithRecorder(r Recorder) Option {
	return func(s *Sorter) {
		s.recorder = r
	}
}

// New returns a Sorter configured with the given options.
func New(opts ...Option) *Sorter {
	s := &Sorter{
		fs:       afero.NewOsFs(),
		format:   manifest.FormatJSON,
		recorder: nopRecorder{},
	}
	for _, o := range opts {
		o(s)
	}
	if s.logger == nil {
		s.logger = log.NewLogger(LoggerName, true, os.Stderr)
	}
	return s
}

// Result is the outcome of a sort run.
type Result struct {
	// Manifest is the sorted copy of the input manifest.
	Manifest any
	// Stats summarizes the run.
	Stats Stats
	// Path is the file the manifest was written to, if any.
	Path string
}

// Sort returns a sorted copy of doc. See Run.
func (s *Sorter) Sort(doc any, o config.Options) (any, error) {
	r, err := s.Run(doc, o)
	return r.Manifest, err
}

// Run sorts a copy of doc according to o and, if o names both a file and an
// output directory, persists the result there. doc is never modified.
//
// If doc cannot be copied a serialization error is returned and the result
// is empty. If the sorted manifest cannot be persisted an IO error is
// returned along with the complete, valid result.
func (s *Sorter) Run(doc any, o config.Options) (Result, error) {
	start := time.Now()
	r, err := s.run(doc, o)
	s.recorder.Record(r.Stats, time.Since(start), err)
	return r, err
}

func (s *Sorter) run(doc any, o config.Options) (Result, error) {
	o, err := config.Merge(o)
	if err != nil {
		return Result{}, errors.Wrap(err, errMergeOptions)
	}
	l := logging.NewNopLogger()
	if o.Debug {
		l = s.logger
	}
	l.Debug("Starting to sort custom elements manifest", log.KeyStage, log.StageStart)
	l.Debug("Resolved options", log.KeyStage, log.StageOptions, "options", o)
	// empty and members custom fields never make it into the field table
	if err := o.Validate(); err != nil {
		l.Debug("Ignoring custom fields", log.KeyStage, log.StageOptions, "reason", err.Error())
	}

	sorted, err := manifest.Copy(doc)
	if err != nil {
		return Result{}, errors.Wrap(err, errCopy)
	}
	r := Result{Manifest: sorted}
	if o.Skip {
		l.Debug("Skipping sorting due to skip option", log.KeyStage, log.StageSkip)
		return r, nil
	}
	w := &walker{
		collator:       newCollator(),
		fields:         NewFieldTable(o.CustomFields...),
		deprecatedLast: o.DeprecatedLast,
		logger:         l,
	}
	w.walk(sorted)
	r.Stats = w.stats
	l.Debug("Finished sorting custom elements manifest", log.KeyStage, log.StageFinish)

	if !o.Persist() {
		return r, nil
	}
	path, err := s.store(sorted, o)
	if err != nil {
		return r, err
	}
	r.Path = path
	l.Debug("Saved sorted manifest", log.KeyStage, log.StageStore, "path", path)
	return r, nil
}

// Sort returns a sorted copy of doc using a Sorter with default options.
func Sort(doc any, o config.Options) (any, error) {
	return New().Sort(doc, o)
}
