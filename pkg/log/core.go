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

package log

import (
	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// KeyStage is the key of the log field that tags a message with the stage
// of a sort run it reports on.
const KeyStage = "stage"

// Stage is a stage of a sort run.
type Stage string

// Stages of a sort run.
const (
	StageStart       Stage = "start"
	StageOptions     Stage = "options"
	StageSkip        Stage = "skip"
	StageModule      Stage = "module"
	StageModuleItems Stage = "module-items"
	StageDeclaration Stage = "declaration"
	StageCollection  Stage = "collection"
	StageFinish      Stage = "finish"
	StageStore       Stage = "store"
)

var stageColors = map[Stage]color.Attribute{
	StageStart:       color.FgCyan,
	StageOptions:     color.FgBlue,
	StageSkip:        color.FgYellow,
	StageModule:      color.FgBlue,
	StageModuleItems: color.FgYellow,
	StageDeclaration: color.FgGreen,
	StageCollection:  color.FgMagenta,
	StageFinish:      color.FgGreen,
	StageStore:       color.FgGreen,
}

// core wraps zapcore.Core to render the stage field of an entry as the color
// of its message.
type core struct {
	zapcore.Core
	colored bool
}

// With wraps zapcore.With
func (c *core) With(fields []zapcore.Field) zapcore.Core {
	return &core{
		Core:    c.Core.With(fields),
		colored: c.colored,
	}
}

// Check determines whether the supplied Entry should be logged (using the embedded LevelEnabler).
// If the entry should be logged, the core adds itself to the CheckedEntry and returns the result.
// Callers must use Check before calling Write.
func (c *core) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return ce.AddCore(entry, c)
	}

	return ce
}

// Write drops the stage field of the entry and, if colors are enabled,
// paints the message with the color of that stage.
func (c *core) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	entry, fields = c.applyStage(entry, fields)
	return c.Core.Write(entry, fields)
}

// Sync flushes buffered logs (if any).
func (c *core) Sync() error {
	return c.Core.Sync()
}

// WithStageColors enables painting messages with the color of their stage.
func WithStageColors(enabled bool) func(c *core) {
	return func(c *core) {
		c.colored = enabled
	}
}

// WrapCore returns a `zap.Option` that wraps the default core with our core.
func WrapCore(options ...func(c *core)) zap.Option {
	return zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		newCore := &core{
			Core: c,
		}
		for _, option := range options {
			option(newCore)
		}
		return newCore
	})
}

func stageOf(f zapcore.Field) (Stage, bool) {
	if f.Key != KeyStage {
		return "", false
	}
	switch f.Type { //nolint:exhaustive // a stage is either a string or a Stage value
	case zapcore.StringType:
		return Stage(f.String), true
	case zapcore.StringerType, zapcore.ReflectType:
		if s, ok := f.Interface.(Stage); ok {
			return s, true
		}
	}
	return "", false
}

func (c *core) applyStage(entry zapcore.Entry, fields []zapcore.Field) (zapcore.Entry, []zapcore.Field) {
	kept := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		s, ok := stageOf(f)
		if !ok {
			kept = append(kept, f)
			continue
		}
		if a, ok := stageColors[s]; ok && c.colored {
			p := color.New(a)
			p.EnableColor()
			entry.Message = p.Sprint(entry.Message)
		}
	}
	return entry, kept
}
