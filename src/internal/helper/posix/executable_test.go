// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/pem-codec/src/internal/helper/posix"
)

func TestGetExecutableName(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "Just filename", args: []string{"pem-codec"}, expected: "pem-codec"},
		{name: "Relative path", args: []string{"./bin/pem-codec"}, expected: "pem-codec"},
		{name: "Unix absolute path", args: []string{"/usr/local/bin/pem-codec", "decode"}, expected: "pem-codec"},
		{name: "Windows path with .exe", args: []string{`C:\Program Files\pem-codec\pem-codec.exe`}, expected: "pem-codec"},
		{name: "Mixed separators", args: []string{`C:/tools\bin/codec.exe`}, expected: "codec"},
		{name: "Other extension kept", args: []string{"/opt/pem-codec.bin"}, expected: "pem-codec.bin"},
		{name: "Trailing separator", args: []string{"/usr/bin/"}, expected: posix.FallbackName},
		{name: "Empty args", args: []string{}, expected: posix.FallbackName},
		{name: "Empty first arg", args: []string{""}, expected: posix.FallbackName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })

			os.Args = tt.args
			assert.Equal(t, tt.expected, posix.GetExecutableName())
		})
	}
}
