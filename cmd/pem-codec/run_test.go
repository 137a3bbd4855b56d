// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/pem-codec/src/logger"
	verpkg "github.com/H0llyW00dzZ/pem-codec/src/version"
)

func TestVersionInit(t *testing.T) {
	assert.NotEmpty(t, version, "version should not be empty after init")

	if version != verpkg.Version {
		// If they differ, it means version was set by ldflags, which is also valid
		t.Logf("version set by ldflags: %s (package version: %s)", version, verpkg.Version)
	}
}

func TestRun(t *testing.T) {
	t.Setenv("PEM_CODEC_CONFIG_FILE", "")

	dir := t.TempDir()
	in := filepath.Join(dir, "doc.pem")
	require.NoError(t, os.WriteFile(in, []byte("-----BEGIN X-----\nAAEC\n-----END X-----\n"), 0644))
	out := filepath.Join(dir, "payload.bin")

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	tests := []struct {
		name    string
		args    []string
		code    int
		logPart string
	}{
		{name: "Success", args: []string{"pem-codec", "decode", "-f", in, "-o", out}, code: 0},
		{name: "Failure", args: []string{"pem-codec", "decode", "-f", filepath.Join(dir, "missing.pem")}, code: 1, logPart: "Error:"},
		{name: "Unknown Command", args: []string{"pem-codec", "frobnicate"}, code: 1, logPart: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			log := logger.NewCLILogger()
			log.SetOutput(&logs)

			os.Args = tt.args
			assert.Equal(t, tt.code, run(context.Background(), log))
			if tt.logPart != "" {
				assert.Contains(t, logs.String(), tt.logPart)
			}
		})
	}

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x02}, data)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"pem-codec", "--version"}

	var logs bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&logs)

	code := run(ctx, log)
	// Either branch of the select may win when both are ready.
	assert.Contains(t, []int{0, 130}, code)
}

// captureStderr redirects os.Stderr to a file for the duration of fn and
// returns what was written.
func captureStderr(t *testing.T, fn func()) []byte {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "stderr"))
	require.NoError(t, err)

	old := os.Stderr
	os.Stderr = f
	defer func() { os.Stderr = old }()

	fn()

	require.NoError(t, f.Close())
	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	return data
}

type logLine struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func parseLogLines(t *testing.T, data []byte) []logLine {
	t.Helper()
	var lines []logLine
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		var l logLine
		require.NoError(t, json.Unmarshal(sc.Bytes(), &l), "stderr line %q is not JSON", sc.Text())
		lines = append(lines, l)
	}
	return lines
}

func TestRunLogFormat(t *testing.T) {
	t.Setenv("PEM_CODEC_CONFIG_FILE", "")

	dir := t.TempDir()
	in := filepath.Join(dir, "doc.pem")
	require.NoError(t, os.WriteFile(in, []byte("-----BEGIN X-----\nAAEC\n-----END X-----\n"), 0644))
	out := filepath.Join(dir, "payload.bin")

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	tests := []struct {
		name     string
		args     []string
		code     int
		messages []string
	}{
		{
			name:     "JSON Status",
			args:     []string{"pem-codec", "--log-format", "json", "decode", "-f", in, "-o", out},
			code:     0,
			messages: []string{"Decoded X block (3 bytes)"},
		},
		{
			name:     "JSON Error",
			args:     []string{"pem-codec", "--log-format", "json", "decode", "-f", filepath.Join(dir, "missing.pem")},
			code:     1,
			messages: []string{"Error: error reading input file: open " + filepath.Join(dir, "missing.pem") + ": no such file or directory"},
		},
		{
			name:     "JSON Quiet Keeps Errors",
			args:     []string{"pem-codec", "--log-format", "json", "-q", "size", "encode", "-l", "X", "-w", "0"},
			code:     1,
			messages: []string{"Error: pem: invalid line width"},
		},
		{
			name: "JSON Quiet Success",
			args: []string{"pem-codec", "--log-format=json", "--quiet", "decode", "-f", in, "-o", out},
			code: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var textLogs bytes.Buffer
			log := logger.NewCLILogger()
			log.SetOutput(&textLogs)

			os.Args = tt.args
			var code int
			stderr := captureStderr(t, func() {
				code = run(context.Background(), log)
			})

			assert.Equal(t, tt.code, code)
			assert.Empty(t, textLogs.String(), "text logger must stay unused in JSON mode")

			lines := parseLogLines(t, stderr)
			require.Len(t, lines, len(tt.messages))
			for i, msg := range tt.messages {
				assert.Equal(t, "info", lines[i].Level)
				assert.Equal(t, msg, lines[i].Message)
			}
		})
	}
}

func TestRunQuietText(t *testing.T) {
	t.Setenv("PEM_CODEC_CONFIG_FILE", "")

	dir := t.TempDir()
	in := filepath.Join(dir, "payload.bin")
	require.NoError(t, os.WriteFile(in, []byte{0x00, 0x01, 0x02}, 0644))

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	var logs bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&logs)

	os.Args = []string{"pem-codec", "-q", "encode", "-l", "X", "-f", in, "-o", filepath.Join(dir, "out.pem")}
	assert.Equal(t, 0, run(context.Background(), log))
	assert.Empty(t, logs.String())

	os.Args = []string{"pem-codec", "--log-format", "xml", "scan"}
	assert.Equal(t, 1, run(context.Background(), log))
	assert.Contains(t, logs.String(), "log format must be text or json")
}
