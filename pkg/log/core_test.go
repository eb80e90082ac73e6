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
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestApplyStage(t *testing.T) {
	fields := []zap.Field{
		zap.Any(KeyStage, StageModule),
		zap.Int("count", 2),
	}
	entry := zapcore.Entry{
		Level:   zapcore.DebugLevel,
		Message: "Sorting 2 modules",
	}

	actualEntry, actualFields := (&core{}).applyStage(entry, fields)
	assert.Equal(t, "Sorting 2 modules", actualEntry.Message)
	assert.ElementsMatch(t, []zap.Field{zap.Int("count", 2)}, actualFields)

	actualEntry, actualFields = (&core{colored: true}).applyStage(entry, fields)
	assert.NotEqual(t, "Sorting 2 modules", actualEntry.Message)
	assert.Contains(t, actualEntry.Message, "Sorting 2 modules")
	assert.Contains(t, actualEntry.Message, "\x1b[")
	assert.Len(t, actualFields, 1)
}

func TestStageOf(t *testing.T) {
	s, ok := stageOf(zap.String(KeyStage, "finish"))
	assert.True(t, ok)
	assert.Equal(t, StageFinish, s)

	s, ok = stageOf(zap.Any(KeyStage, StageCollection))
	assert.True(t, ok)
	assert.Equal(t, StageCollection, s)

	_, ok = stageOf(zap.String("other", "finish"))
	assert.False(t, ok)

	_, ok = stageOf(zap.Int(KeyStage, 1))
	assert.False(t, ok)
}

func TestUnknownStageIsDropped(t *testing.T) {
	entry := zapcore.Entry{Message: "m"}
	actualEntry, actualFields := (&core{colored: true}).applyStage(entry, []zap.Field{zap.String(KeyStage, "unknown")})
	assert.Equal(t, "m", actualEntry.Message)
	assert.Empty(t, actualFields)
}
