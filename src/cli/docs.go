// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the PEM codec.
// It implements a Cobra-based CLI with encode, decode, size, scan and inspect
// commands built on package pem. Input comes from a file or stdin through the
// pooled reader in the gc helper, documents and payloads go to stdout or a
// file, and status messages go through the logger package. Defaults for the
// label, line ending and line width can come from a JSON or YAML config file.
package cli
