// SPDX-FileCopyrightText: 2026 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

// Package errors classifies the failures of a manifest sort run.
package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

type sortError struct {
	message string
	cause   error
}

func (s *sortError) Error() string {
	if s.cause == nil {
		return s.message
	}
	return fmt.Sprintf("%s: %s", s.message, s.cause.Error())
}

func (s *sortError) Unwrap() error {
	return s.cause
}

type serializationError struct {
	*sortError
}

// NewSerializationError returns a new error reporting that a manifest could
// not be copied or serialized, e.g. because it contains a cycle or a value
// with no JSON representation.
func NewSerializationError(cause error, format string, args ...any) error {
	return &serializationError{
		sortError: &sortError{
			message: fmt.Sprintf(format, args...),
			cause:   cause,
		},
	}
}

// IsSerialization returns whether err is, or wraps, a serialization failure.
func IsSerialization(err error) bool {
	r := &serializationError{}
	return errors.As(err, &r)
}

type ioError struct {
	*sortError
	path string
}

// NewIOError returns a new error reporting that the sorted manifest could
// not be persisted at the given path.
func NewIOError(cause error, path string, format string, args ...any) error {
	return &ioError{
		sortError: &sortError{
			message: fmt.Sprintf(format, args...),
			cause:   cause,
		},
		path: path,
	}
}

// IsIO returns whether err is, or wraps, a persistence failure.
func IsIO(err error) bool {
	r := &ioError{}
	return errors.As(err, &r)
}

// Path returns the file system path an IO error is about, or the empty
// string if err does not wrap an IO error.
func Path(err error) string {
	r := &ioError{}
	if !errors.As(err, &r) {
		return ""
	}
	return r.path
}
