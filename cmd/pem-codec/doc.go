// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// pem-codec is a command-line tool for encoding and decoding RFC 7468
// textual encodings (PEM).
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/pem-codec/cmd/pem-codec@latest
//
// # Usage
//
//	pem-codec <command> [FLAGS]
//
// # Commands
//
//	encode        Wrap binary input in a PEM block (-l LABEL, --eol, -w)
//	decode        Extract the payload of the first block (--label-only)
//	size encode   Print the exact text length for -n payload bytes
//	size decode   Print the exact payload length of the first block
//	scan          List every block in a bundle (--table)
//	inspect       Summarize certificates in PEM, DER or PKCS7 input (--table)
//
// Every command reads -f FILE or stdin. encode and decode write to -o FILE
// or stdout; status messages go to stderr.
//
// # Configuration
//
// Defaults for the label, line ending and line width are read from the file
// named by --config or PEM_CODEC_CONFIG_FILE (.json, .yaml or .yml):
//
//	defaults:
//	  label: CERTIFICATE
//	  eol: crlf
//	  lineWidth: 64
//	limits:
//	  maxInputBytes: 67108864
//
// # Examples
//
// Convert a DER certificate to PEM with CRLF line endings:
//
//	pem-codec encode -l CERTIFICATE --eol crlf -f cert.der -o cert.pem
//
// Recover the DER bytes:
//
//	pem-codec decode -f cert.pem -o cert.der
//
// List the blocks of a bundle as a markdown table:
//
//	pem-codec scan -f chain.pem --table
package main
