// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pem

import "strings"

// EOL is the end-of-line sequence written after every line of an encoded document.
type EOL string

// Supported end-of-line sequences.
const (
	LF   EOL = "\n"
	CRLF EOL = "\r\n"
	CR   EOL = "\r"
)

// MaxEOLLen is the longest custom end-of-line sequence accepted.
const MaxEOLLen = 4

// ParseEOL maps the names "lf", "crlf" and "cr" (case-insensitive) to their
// sequence. It is used by configuration layers that store the choice as text.
func ParseEOL(name string) (EOL, error) {
	switch strings.ToLower(name) {
	case "lf", "":
		return LF, nil
	case "crlf":
		return CRLF, nil
	case "cr":
		return CR, nil
	}
	return "", ErrInvalidEOL
}

// Validate reports whether e can be written by the encoder and recognized by
// the decoder. Besides the predefined values, any sequence of 1 to [MaxEOLLen]
// bytes made only of '\r' and '\n' is accepted.
func (e EOL) Validate() error {
	if len(e) == 0 || len(e) > MaxEOLLen {
		return ErrInvalidEOL
	}
	for i := 0; i < len(e); i++ {
		if e[i] != '\r' && e[i] != '\n' {
			return ErrInvalidEOL
		}
	}
	return nil
}

// String returns the conventional name of e, or a quoted form for custom sequences.
func (e EOL) String() string {
	switch e {
	case LF:
		return "lf"
	case CRLF:
		return "crlf"
	case CR:
		return "cr"
	}
	return strings.NewReplacer("\r", `\r`, "\n", `\n`).Replace(string(e))
}
