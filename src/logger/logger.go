// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/H0llyW00dzZ/pem-codec/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// The CLI writes encoded and decoded documents to stdout, so every
// implementation reports status out of band, to stderr by default.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// sprintln formats like [fmt.Sprintln] without the trailing newline, so that
// operands are always separated by spaces.
func sprintln(v ...any) string { return strings.TrimSuffix(fmt.Sprintln(v...), "\n") }

// CLILogger implements Logger with a plain zerolog console writer.
// It's designed for command-line interface output with human-readable formatting.
//
// CLILogger is safe for concurrent use by multiple goroutines.
type CLILogger struct {
	mu     sync.Mutex
	logger zerolog.Logger
}

func newConsole(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.MessageFieldName},
	})
}

// NewCLILogger creates a new CLI logger writing to stderr with timestamps
// and levels disabled.
func NewCLILogger() *CLILogger {
	return &CLILogger{logger: newConsole(os.Stderr)}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Log().Msgf(format, v...)
}

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Log().Msg(sprintln(v...))
}

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = newConsole(w)
}

// JSONLogger implements Logger with structured JSON lines of the form
// {"level":"info","message":"..."}. It suppresses output when silent, which
// lets the CLI keep stderr clean in scripts.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	logger zerolog.Logger
	silent bool
}

// NewJSONLogger creates a new JSON logger writing to writer.
// A nil writer discards output.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		logger: zerolog.New(writer),
		silent: silent,
	}
}

// Printf formats and logs a structured message.
// Output is suppressed if silent mode is enabled.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()
	fmt.Fprintf(buf, format, v...)

	j.write(buf.String())
}

// Println logs a structured message.
// Output is suppressed if silent mode is enabled.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.write(sprintln(v...))
}

func (j *JSONLogger) write(msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.logger.Info().Msg(msg)
}

// SetOutput sets the output destination for the JSON logger.
func (j *JSONLogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.logger = j.logger.Output(w)
}
