// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides two [zerolog] backed
// implementations: CLILogger for human-readable command-line output and
// JSONLogger for structured JSON lines. Both are thread-safe. The codec in
// package pem never logs; only the CLI layer does.
//
// [zerolog]: https://github.com/rs/zerolog
package logger
