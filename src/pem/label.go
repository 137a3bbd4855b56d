// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pem

// MaxLabelLen bounds the label so that a delimiter line stays well below
// common line-length limits. The longest label registered by RFC 7468 is 21 bytes.
const MaxLabelLen = 128

// ValidateLabel checks label against the RFC 7468 grammar
//
//	label     = [ labelchar *( ["-" / SP] labelchar ) ]
//	labelchar = %x21-2C / %x2E-7E
//
// with the empty label rejected. A single hyphen or space may only separate
// two label characters, so a label can never contain "-----".
func ValidateLabel[T ~string | ~[]byte](label T) error {
	if len(label) == 0 || len(label) > MaxLabelLen {
		return ErrInvalidLabel
	}
	sep := true // no separator allowed at the start
	for i := 0; i < len(label); i++ {
		switch c := label[i]; {
		case c == '-' || c == ' ':
			if sep {
				return ErrInvalidLabel
			}
			sep = true
		case c >= 0x21 && c <= 0x7e:
			sep = false
		default:
			return ErrInvalidLabel
		}
	}
	if sep {
		return ErrInvalidLabel
	}
	return nil
}
