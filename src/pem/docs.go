// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pem implements the textual encoding of [RFC 7468] (PEM) over
// caller-provided buffers.
//
// A document is a header line, a standard Base64 body wrapped at a fixed line
// width, and a footer line:
//
//	-----BEGIN CERTIFICATE-----
//	MIIEVzCCAz+gAwIBAgIRAIsnDh7AqstVCQTDZO49FUQwDQYJKoZIhvcNAQELBQAw
//	...
//	-----END CERTIFICATE-----
//
// Every line ends with the configured [EOL]. Sizes are computed up front
// ([Codec.EncodedLen], [Codec.DecodedLen]) so callers can allocate once, and
// [Codec.Encode] and [Codec.Decode] never write past the provided buffer. A
// buffer that is too small is rejected with [ErrBufferTooSmall] before anything
// is written.
//
// Decoding is strict: a missing or mismatched footer, a character outside the
// Base64 alphabet, misplaced padding or a truncated final group are all errors.
// The decoder does tolerate a preamble before the header, trailing spaces or
// tabs at the end of a line, blank lines in the body and any mix of LF, CRLF
// and CR line endings.
//
// The package handles one block per call. [Scan] reports where a block starts
// and ends so callers can walk a bundle themselves.
//
// [RFC 7468]: https://www.rfc-editor.org/rfc/rfc7468
package pem
