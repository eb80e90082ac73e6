/*
Copyright 2021 The Crossplane Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log builds the diagnostics sink of the manifest sorter.
package log

import (
	"io"

	"github.com/crossplane/crossplane-runtime/v2/pkg/logging"
	"github.com/fatih/color"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerConfig struct {
	color bool
}

// Option configures a logger built by NewLogger.
type Option func(c *loggerConfig)

// WithColor enables or disables colored output. By default output is
// colored unless NO_COLOR is set or stdout is not a terminal.
func WithColor(enabled bool) Option {
	return func(c *loggerConfig) {
		c.color = enabled
	}
}

// NewLogger returns a logger named name writing human readable lines to w.
// Debug messages are only written if debug is set.
func NewLogger(name string, debug bool, w io.Writer, opts ...Option) logging.Logger {
	cfg := &loggerConfig{color: !color.NoColor}
	for _, o := range opts {
		o(cfg)
	}
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	zl := zap.New(
		zapcore.NewCore(zapcore.NewConsoleEncoder(newEncoderConfig(cfg.color)), zapcore.AddSync(w), level),
		WrapCore(WithStageColors(cfg.color)))
	return logging.NewLogrLogger(zapr.NewLogger(zl).WithName(name))
}
