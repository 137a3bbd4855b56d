// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pem

import "errors"

var (
	// ErrInvalidLabel indicates that a label is empty, longer than [MaxLabelLen],
	// or does not follow the RFC 7468 label grammar.
	ErrInvalidLabel = errors.New("pem: invalid label")

	// ErrInvalidEOL indicates an end-of-line sequence the decoder could not recognize.
	ErrInvalidEOL = errors.New("pem: invalid end-of-line sequence")

	// ErrInvalidLineWidth indicates a line width outside 1..[MaxLineWidth].
	ErrInvalidLineWidth = errors.New("pem: invalid line width")

	// ErrHeaderNotFound indicates that the input does not contain a BEGIN line.
	ErrHeaderNotFound = errors.New("pem: header not found")

	// ErrFooterMismatch indicates that the body is closed by a delimiter line
	// other than the END line matching the header label.
	ErrFooterMismatch = errors.New("pem: footer does not match header")

	// ErrUnexpectedEOF indicates that the input ended before the block was complete.
	ErrUnexpectedEOF = errors.New("pem: unexpected end of input")

	// ErrInvalidBase64Character indicates a byte outside the standard Base64
	// alphabet, including whitespace inside a body line.
	ErrInvalidBase64Character = errors.New("pem: invalid base64 character")

	// ErrInvalidPadding indicates padding before the final group, a final group
	// shape other than "xxxx", "xxx=" or "xx==", or non-zero discarded bits.
	ErrInvalidPadding = errors.New("pem: invalid base64 padding")

	// ErrInvalidBodyLength indicates a body whose character count is not a
	// multiple of four.
	ErrInvalidBodyLength = errors.New("pem: invalid base64 body length")

	// ErrBufferTooSmall indicates that the destination buffer cannot hold the output.
	// Nothing is written when it is returned.
	ErrBufferTooSmall = errors.New("pem: destination buffer too small")
)
