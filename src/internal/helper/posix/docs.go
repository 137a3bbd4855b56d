// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-friendly process helpers for the CLI.
//
// GetExecutableName returns the name the binary was started under, without
// directories or a Windows ".exe" suffix, so that usage lines and examples
// match what the user typed:
//
//	rootCmd := &cobra.Command{
//	    Use: posix.GetExecutableName(),
//	}
//
// Paths with either separator are handled on every platform, and an empty
// argument vector falls back to "pem-codec".
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
