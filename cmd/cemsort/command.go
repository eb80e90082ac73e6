// SPDX-FileCopyrightText: 2026 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/afero"

	"github.com/wc-toolkit/cem-sorter/pkg/config"
	"github.com/wc-toolkit/cem-sorter/pkg/log"
	"github.com/wc-toolkit/cem-sorter/pkg/manifest"
	"github.com/wc-toolkit/cem-sorter/pkg/metrics"
	"github.com/wc-toolkit/cem-sorter/pkg/sorter"
)

const (
	stdinName = "-"

	errLoadConfig   = "cannot load the sort options"
	errMergeOptions = "cannot merge the sort options"
	errReadManifest = "cannot read the manifest"
	errMetrics      = "cannot set up the sort metrics"
	errGather       = "cannot gather the sort metrics"
	errWriteMetrics = "cannot write the sort metrics"
	errMarshal      = "cannot marshal the sorted manifest"
	errWriteStdout  = "cannot write the sorted manifest to stdout"
	errNotCanonical = "manifest is not in canonical order"
)

// command is a single invocation of cemsort.
type command struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	input      string
	configFile string
	opts       config.Options
	format     manifest.Format
	toStdout   bool
	check      bool
	metrics    bool
}

func (c *command) run() error { //nolint:gocyclo // easier to follow as a unit
	o, err := c.options()
	if err != nil {
		return err
	}
	doc, err := c.read()
	if err != nil {
		return errors.Wrap(err, errReadManifest)
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return errors.Wrap(err, errMetrics)
	}
	s := sorter.New(
		sorter.WithFs(c.fs),
		sorter.WithFormat(c.format),
		sorter.WithLogger(log.NewLogger(sorter.LoggerName, true, c.stderr)),
		sorter.WithRecorder(rec),
	)
	r, err := s.Run(doc, o)
	if err != nil {
		return err
	}
	if c.metrics {
		if err := writeMetrics(c.stderr, reg); err != nil {
			return err
		}
	}

	switch {
	case c.check:
		if !r.Stats.Canonical() {
			return errors.New(errNotCanonical)
		}
	case c.toStdout:
		b, err := manifest.Marshal(r.Manifest, c.format)
		if err != nil {
			return errors.Wrap(err, errMarshal)
		}
		if !bytes.HasSuffix(b, []byte("\n")) {
			b = append(b, '\n')
		}
		if _, err := c.stdout.Write(b); err != nil {
			return errors.Wrap(err, errWriteStdout)
		}
	}
	return nil
}

// options layers the command line flags over the configuration file over
// the command line tool's output defaults. Neither checking nor writing to
// stdout persists anything, and checking always sorts.
func (c *command) options() (config.Options, error) {
	var bases []config.Options
	if c.configFile != "" {
		f, err := config.Load(c.fs, c.configFile)
		if err != nil {
			return config.Options{}, errors.Wrap(err, errLoadConfig)
		}
		bases = append(bases, f)
	}
	bases = append(bases, config.Options{FileName: config.DefaultFileName, OutDir: config.DefaultOutDir})
	o, err := config.Merge(c.opts, bases...)
	if err != nil {
		return config.Options{}, errors.Wrap(err, errMergeOptions)
	}
	if c.check || c.toStdout {
		o.FileName = ""
	}
	if c.check {
		o.Skip = false
	}
	return o, nil
}

func (c *command) read() (any, error) {
	if c.input == "" || c.input == stdinName {
		return manifest.Decode(c.stdin)
	}
	return manifest.Read(c.fs, c.input)
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, errGather)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, errWriteMetrics)
		}
	}
	return nil
}
