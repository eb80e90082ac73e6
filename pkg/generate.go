// SPDX-FileCopyrightText: 2023 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

//go:build generate
// +build generate

package pkg

// The mock generator used by the go:generate directives of this module is
// imported here so that go.mod pins its version.

import (
	_ "github.com/golang/mock/mockgen" //nolint:typecheck
)
