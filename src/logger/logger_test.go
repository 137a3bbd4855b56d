// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/pem-codec/src/logger"
)

type jsonLine struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func parseLines(t *testing.T, data []byte) []jsonLine {
	t.Helper()
	var lines []jsonLine
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		var l jsonLine
		require.NoError(t, json.Unmarshal(sc.Bytes(), &l), "line %q is not JSON", sc.Text())
		lines = append(lines, l)
	}
	require.NoError(t, sc.Err())
	return lines
}

func TestCLILogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Printf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Printf("encoded %d bytes as %s", 42, "CERTIFICATE")

				assert.Equal(t, "encoded 42 bytes as CERTIFICATE\n", buf.String())
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Println("label", "CRL")

				assert.Contains(t, buf.String(), "label CRL")
				assert.NotContains(t, buf.String(), "INF", "level should not be rendered")
			},
		},
		{
			name: "SetOutput",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewCLILogger()

				log.SetOutput(&buf1)
				log.Println("first")

				log.SetOutput(&buf2)
				log.Println("second")

				assert.Contains(t, buf1.String(), "first")
				assert.Contains(t, buf2.String(), "second")
				assert.NotContains(t, buf1.String(), "second", "buf1 should not contain 'second'")
			},
		},
		{
			name: "SetOutput_Nil",
			testFunc: func(t *testing.T) {
				log := logger.NewCLILogger()
				log.SetOutput(nil)
				assert.NotPanics(t, func() { log.Println("discarded") })
			},
		},
		{
			name: "ConcurrentUsage",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				var wg sync.WaitGroup
				for i := range 10 {
					wg.Go(func() {
						for j := range 10 {
							log.Printf("goroutine %d message %d", i, j)
						}
					})
				}
				wg.Wait()

				assert.Equal(t, 100, strings.Count(buf.String(), "\n"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Printf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Printf("decoded %d bytes", 1024)

				lines := parseLines(t, buf.Bytes())
				require.Len(t, lines, 1)
				assert.Equal(t, "info", lines[0].Level)
				assert.Equal(t, "decoded 1024 bytes", lines[0].Message)
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Println("scan", 3, "blocks")

				lines := parseLines(t, buf.Bytes())
				require.Len(t, lines, 1)
				assert.Equal(t, "scan 3 blocks", lines[0].Message)
			},
		},
		{
			name: "Silent",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, true)

				log.Printf("hidden %s", "message")
				log.Println("hidden")

				assert.Empty(t, buf.String(), "silent logger should not write")
			},
		},
		{
			name: "EscapedMessage",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Printf("-----BEGIN %s-----\r\n\"quoted\"", "CERTIFICATE")

				lines := parseLines(t, buf.Bytes())
				require.Len(t, lines, 1)
				assert.Equal(t, "-----BEGIN CERTIFICATE-----\r\n\"quoted\"", lines[0].Message)
			},
		},
		{
			name: "NilWriter",
			testFunc: func(t *testing.T) {
				log := logger.NewJSONLogger(nil, false)
				assert.NotPanics(t, func() { log.Println("discarded") })
			},
		},
		{
			name: "SetOutput",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewJSONLogger(&buf1, false)
				log.Println("first")

				log.SetOutput(&buf2)
				log.Println("second")

				assert.Len(t, parseLines(t, buf1.Bytes()), 1)
				lines := parseLines(t, buf2.Bytes())
				require.Len(t, lines, 1)
				assert.Equal(t, "second", lines[0].Message)
			},
		},
		{
			name: "SetOutput_Nil",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)
				log.SetOutput(nil)
				log.Println("discarded")
				assert.Empty(t, buf.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestJSONLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewJSONLogger(&buf, false)

	const goroutines, perGoroutine = 16, 25
	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Go(func() {
			for j := range perGoroutine {
				if j%2 == 0 {
					log.Printf("worker %d line %d", i, j)
				} else {
					log.Println("worker", i, "line", j)
				}
			}
		})
	}
	wg.Wait()

	lines := parseLines(t, buf.Bytes())
	assert.Len(t, lines, goroutines*perGoroutine)
	for _, l := range lines {
		assert.Equal(t, "info", l.Level)
		assert.True(t, strings.HasPrefix(l.Message, "worker "), "unexpected message %q", l.Message)
	}
}

func TestJSONLogger_WriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pem-codec.log")
	f, err := os.Create(path)
	require.NoError(t, err)

	log := logger.NewJSONLogger(f, false)
	log.Printf("wrote %s", "bundle.pem")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := parseLines(t, data)
	require.Len(t, lines, 1)
	assert.Equal(t, "wrote bundle.pem", lines[0].Message)
}

func TestLoggerInterface(t *testing.T) {
	var _ logger.Logger = logger.NewCLILogger()
	var _ logger.Logger = logger.NewJSONLogger(nil, true)
}
