// SPDX-FileCopyrightText: 2026 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

// Package plugin lets a manifest analyzer pipeline sort the manifest it
// produces at its package link phase.
package plugin

import (
	"github.com/pkg/errors"

	"github.com/wc-toolkit/cem-sorter/pkg/config"
	"github.com/wc-toolkit/cem-sorter/pkg/sorter"
)

// Name identifies the plugin in the host pipeline.
const Name = "@wc-toolkit/cem-sorter"

const errSort = "cannot sort the custom elements manifest"

//go:generate go run github.com/golang/mock/mockgen -copyright_file ../../hack/boilerplate.txt -destination ./fake/mocks/mock.go -package mocks github.com/wc-toolkit/cem-sorter/pkg/plugin ManifestSorter

// ManifestSorter sorts a manifest according to the given options.
type ManifestSorter interface {
	Sort(doc any, o config.Options) (any, error)
}

// LinkPhaseContext is what the host pipeline hands to the package link
// phase.
type LinkPhaseContext struct {
	// CustomElementsManifest is the manifest assembled by the pipeline.
	CustomElementsManifest any
}

// Plugin sorts the pipeline's manifest with its bound options.
type Plugin struct {
	opts   config.Options
	sorter ManifestSorter
}

// Option configures a Plugin.
type Option func(p *Plugin)

// WithSorter sets the sorter the plugin forwards manifests to.
func WithSorter(s ManifestSorter) Option {
	return func(p *Plugin) {
		p.sorter = s
	}
}

// New returns a Plugin bound to o. The host pipeline writes the manifest
// itself, so the file name of o is always discarded and the plugin never
// persists anything.
func New(o config.Options, opts ...Option) *Plugin {
	o.FileName = ""
	o.CustomFields = append([]string(nil), o.CustomFields...)
	p := &Plugin{opts: o}
	for _, fn := range opts {
		fn(p)
	}
	if p.sorter == nil {
		p.sorter = sorter.New()
	}
	return p
}

// Name returns the name of the plugin.
func (p *Plugin) Name() string {
	return Name
}

// PackageLinkPhase returns a sorted copy of the manifest in ctx.
func (p *Plugin) PackageLinkPhase(ctx LinkPhaseContext) (any, error) {
	sorted, err := p.sorter.Sort(ctx.CustomElementsManifest, p.opts)
	return sorted, errors.Wrap(err, errSort)
}
