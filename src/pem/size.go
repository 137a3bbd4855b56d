// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pem

import "math"

const (
	// DefaultLineWidth is the body line width mandated by RFC 7468.
	DefaultLineWidth = 64

	// MaxLineWidth bounds configurable line widths.
	MaxLineWidth = 1 << 16

	// MaxPayloadLen is the largest payload whose encoded length is guaranteed
	// to fit in an int for every supported line width and EOL.
	MaxPayloadLen = math.MaxInt / 8
)

// HeaderLen returns the length of the BEGIN line for label, terminator included.
func HeaderLen(label string, eol EOL) int {
	return len(beginPrefix) + len(label) + len(dashes) + len(eol)
}

// FooterLen returns the length of the END line for label, terminator included.
func FooterLen(label string, eol EOL) int {
	return len(endPrefix) + len(label) + len(dashes) + len(eol)
}

// Base64Len returns the padded Base64 length of n bytes, ceil(n/3)*4.
func Base64Len(n int) int { return (n + 2) / 3 * 4 }

// lineCount returns the number of body lines for chars Base64 characters.
// An empty body still occupies one empty line so that the footer starts on a
// line of its own.
func lineCount(chars, width int) int {
	if chars == 0 {
		return 1
	}
	return (chars + width - 1) / width
}

func validateWidth(width int) error {
	if width < 1 || width > MaxLineWidth {
		return ErrInvalidLineWidth
	}
	return nil
}

// WrappedBodyLen returns the length of a body holding chars Base64 characters
// split into lines of at most width characters, each followed by eol.
func WrappedBodyLen(chars, width int, eol EOL) (int, error) {
	if err := validateWidth(width); err != nil {
		return 0, err
	}
	if chars < 0 || chars%4 != 0 {
		return 0, ErrInvalidBodyLength
	}
	return chars + len(eol)*lineCount(chars, width), nil
}

// EncodedLen returns the exact length of the document produced by [Encode]
// for a payload of payloadLen bytes.
func EncodedLen(label string, payloadLen int, eol EOL, width int) (int, error) {
	if err := ValidateLabel(label); err != nil {
		return 0, err
	}
	if err := eol.Validate(); err != nil {
		return 0, err
	}
	if payloadLen < 0 || payloadLen > MaxPayloadLen {
		return 0, ErrInvalidBodyLength
	}
	body, err := WrappedBodyLen(Base64Len(payloadLen), width, eol)
	if err != nil {
		return 0, err
	}
	return HeaderLen(label, eol) + body + FooterLen(label, eol), nil
}

// Base64DecodedLen returns the exact number of bytes encoded by chars Base64
// characters of which the last padding characters are '='. Only the final
// group shapes "xxxx", "xxx=" and "xx==" are valid.
func Base64DecodedLen(chars, padding int) (int, error) {
	if chars < 0 || chars%4 != 0 {
		return 0, ErrInvalidBodyLength
	}
	if padding < 0 || padding > 2 || (chars == 0 && padding != 0) {
		return 0, ErrInvalidPadding
	}
	return chars/4*3 - padding, nil
}

// DecodedLen returns the exact number of bytes the body of a block decodes
// to. body is the text between the header and footer lines, as reported by
// [Bounds.Body]. The body is fully validated, so a nil error guarantees that
// decoding it succeeds.
func DecodedLen(body []byte) (int, error) { return decodeBody(nil, body) }
