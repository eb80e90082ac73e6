// SPDX-FileCopyrightText: 2026 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

package sorter

import (
	"github.com/crossplane/crossplane-runtime/v2/pkg/logging"
	"golang.org/x/text/collate"

	"github.com/wc-toolkit/cem-sorter/pkg/log"
)

// walker sorts one copied manifest. It is created per run and never shared.
type walker struct {
	collator       *collate.Collator
	fields         FieldTable
	deprecatedLast bool
	logger         logging.Logger
	stats          Stats
}

// walk sorts the named-entity collections of doc in place. Values of
// unexpected types are left untouched.
func (w *walker) walk(doc any) {
	root, ok := doc.(map[string]any)
	if !ok {
		return
	}
	modules, ok := root[FieldModules].([]any)
	if !ok {
		return
	}
	w.logger.Debug("Sorting modules", log.KeyStage, log.StageModule, "count", len(modules))
	// modules have no notion of deprecation
	w.sort(FieldModules, modules, FieldPath, false)
	for i, m := range modules {
		module, ok := m.(map[string]any)
		if !ok {
			continue
		}
		w.stats.Modules++
		w.logger.Debug("Processing module", log.KeyStage, log.StageModule, "index", i+1, "path", nameOr(module, FieldPath, "unnamed"))
		w.module(module)
	}
}

func (w *walker) module(module map[string]any) {
	if exports, ok := module[FieldExports].([]any); ok {
		w.logger.Debug("Sorting exports", log.KeyStage, log.StageModuleItems, "count", len(exports))
		w.sort(FieldExports, exports, FieldName, w.deprecatedLast)
	}
	declarations, ok := module[FieldDeclarations].([]any)
	if !ok {
		return
	}
	w.logger.Debug("Sorting declarations", log.KeyStage, log.StageModuleItems, "count", len(declarations))
	w.sort(FieldDeclarations, declarations, FieldName, w.deprecatedLast)
	for _, d := range declarations {
		if declaration, ok := d.(map[string]any); ok {
			w.stats.Declarations++
			w.declaration(declaration)
		}
	}
}

func (w *walker) declaration(declaration map[string]any) {
	w.logger.Debug("Processing declaration", log.KeyStage, log.StageDeclaration,
		"name", nameOr(declaration, FieldName, "unnamed"), "kind", nameOr(declaration, FieldKind, "unknown"))
	if members, ok := declaration[FieldMembers].([]any); ok {
		for _, m := range members {
			member, ok := m.(map[string]any)
			if !ok {
				continue
			}
			// parameters are only carried by methods, but a parameter list
			// found on any member is sorted all the same. Parameters cannot
			// be deprecated.
			if parameters, ok := member[FieldParameters].([]any); ok {
				w.sort(FieldParameters, parameters, FieldName, false)
			}
		}
		w.logger.Debug("Sorting members", log.KeyStage, log.StageCollection, "count", len(members))
		w.sort(FieldMembers, members, FieldName, w.deprecatedLast)
	}
	for _, f := range w.fields {
		items, ok := declaration[f].([]any)
		if !ok {
			continue
		}
		w.logger.Debug("Sorting collection", log.KeyStage, log.StageCollection, "field", f, "count", len(items))
		w.sort(f, items, FieldName, w.deprecatedLast)
	}
}

func (w *walker) sort(field string, items []any, key string, deprecatedLast bool) {
	w.stats.add(field, len(items), sortEntities(w.collator, items, key, deprecatedLast))
}

func nameOr(m map[string]any, key, fallback string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
