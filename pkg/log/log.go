// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎯 Logger prints human readable lines to a console writer and mirrors every
// line to a structured zerolog logger. Safe for concurrent use.
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	infos   int
	fails   int
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🏭 Discard creates a logger that prints nothing
func Discard() *Logger {
	return New(io.Discard, zerolog.Nop())
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 Info logs an informational message. Args are applied with fmt.Sprintf.
func (l *Logger) Info(format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos++
	fmt.Fprintf(l.console, "%s %s\n", color.New(color.FgCyan).Sprint("•"), msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Fail logs a failure
func (l *Logger) Fail(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fails++
	fmt.Fprintf(l.console, "%s %s\n", color.New(color.FgRed).Sprint("✗"), color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 🎨 Bold highlights v
func (l *Logger) Bold(v any) string {
	return color.New(color.Bold).Sprint(v)
}

// 🎨 Green highlights v
func (l *Logger) Green(v any) string {
	return color.New(color.FgGreen).Sprint(v)
}

// 📊 Counts returns how many info and fail lines were logged so far
func (l *Logger) Counts() (infos, fails int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.infos, l.fails
}
