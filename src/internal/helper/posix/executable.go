// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// FallbackName is returned by [GetExecutableName] when os.Args[0] is unavailable.
const FallbackName = "pem-codec"

// GetExecutableName returns the base name of os.Args[0] with a trailing
// ".exe" removed. Both '/' and '\\' count as separators regardless of the
// host OS, so a Windows path seen on Unix still yields the program name.
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return FallbackName
	}

	name := os.Args[0]
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".exe")
	if name == "" {
		return FallbackName
	}

	return name
}
