// SPDX-FileCopyrightText: 2026 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import jsoniter "github.com/json-iterator/go"

// Parser decodes manifest documents. Numbers are kept as json.Number so that
// their textual form survives a decode/encode round trip unchanged.
var Parser = jsoniter.Config{
	UseNumber: true,
}.Froze()

// Printer encodes manifest documents. Object keys are sorted so that two
// semantically equal documents always serialize to the same bytes.
var Printer = jsoniter.Config{
	UseNumber:   true,
	SortMapKeys: true,
}.Froze()
