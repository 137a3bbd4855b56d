// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pem

import "bytes"

const (
	dashes      = "-----"
	beginPrefix = "-----BEGIN "
	endPrefix   = "-----END "
)

// Bounds locates one block inside a text buffer. Offsets are relative to the
// buffer passed to [Scan].
type Bounds struct {
	// Label is the header label. It aliases the scanned text.
	Label []byte
	// Begin is the offset of the BEGIN line.
	Begin int
	// BodyStart is the offset of the first body line.
	BodyStart int
	// BodyEnd is the offset of the END line.
	BodyEnd int
	// End is the offset just past the END line and its terminator. Scanning
	// text[End:] continues with the next block.
	End int
}

// Body returns the body lines of the block located in text.
func (b Bounds) Body(text []byte) []byte { return text[b.BodyStart:b.BodyEnd] }

type scanState int

const (
	seekingHeader scanState = iota
	inBody
	seekingFooter
	done
)

// Scan locates the first block in text. Lines before the BEGIN line are
// skipped. Body lines are not validated here; [DecodedLen] does that.
//
// Scan returns [ErrHeaderNotFound] when no BEGIN line exists,
// [ErrFooterMismatch] when the first delimiter line after the header is not
// the matching END line, and [ErrUnexpectedEOF] when text ends first.
func Scan(text []byte) (Bounds, error) {
	var (
		b     Bounds
		state = seekingHeader
		pos   int
	)
	for state != done {
		if pos >= len(text) {
			if state == seekingHeader {
				return Bounds{}, ErrHeaderNotFound
			}
			return Bounds{}, ErrUnexpectedEOF
		}

		line, eol := nextLine(text[pos:])
		next := pos + len(line) + eol

		switch state {
		case seekingHeader:
			label, ok := parseDelimiter(line, beginPrefix)
			if !ok {
				break
			}
			if eol == 0 {
				return Bounds{}, ErrUnexpectedEOF
			}
			b.Label, b.Begin, b.BodyStart = label, pos, next
			state = inBody
		case inBody:
			if bytes.HasPrefix(line, []byte(dashes)) {
				state = seekingFooter
				continue
			}
		case seekingFooter:
			label, ok := parseDelimiter(line, endPrefix)
			if !ok || !bytes.Equal(label, b.Label) {
				return Bounds{}, ErrFooterMismatch
			}
			b.BodyEnd, b.End = pos, next
			state = done
		}
		pos = next
	}
	return b, nil
}

// parseDelimiter extracts the label from a "-----<prefix>LABEL-----" line.
// Trailing spaces and tabs are ignored.
func parseDelimiter(line []byte, prefix string) ([]byte, bool) {
	line = trimTrailingSpace(line)
	if len(line) < len(prefix)+len(dashes) ||
		!bytes.HasPrefix(line, []byte(prefix)) ||
		!bytes.HasSuffix(line, []byte(dashes)) {
		return nil, false
	}
	label := line[len(prefix) : len(line)-len(dashes)]
	if ValidateLabel(label) != nil {
		return nil, false
	}
	return label, true
}

// putDelimiter writes "<prefix>LABEL-----<eol>" to dst and returns its length.
func putDelimiter(dst []byte, prefix, label string, eol EOL) int {
	n := copy(dst, prefix)
	n += copy(dst[n:], label)
	n += copy(dst[n:], dashes)
	n += copy(dst[n:], eol)
	return n
}
