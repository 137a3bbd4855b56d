// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pem

// spreadLines breaks the chars Base64 characters at the start of buf into
// lines of width characters, each followed by eol, and returns the wrapped
// length. buf must hold at least WrappedBodyLen(chars, width, eol) bytes.
//
// Lines are moved from the last one backward. Line i only moves right by
// i*len(eol), so a move never overwrites characters that are still waiting.
func spreadLines(buf []byte, chars, width int, eol EOL) int {
	lines := lineCount(chars, width)
	w := chars + lines*len(eol)
	total := w
	for i := lines - 1; i >= 0; i-- {
		start := i * width
		end := min(start+width, chars)
		w -= len(eol)
		copy(buf[w:], eol)
		w -= end - start
		copy(buf[w:], buf[start:end])
	}
	return total
}

// nextLine returns the first line of text without its terminator and the
// length of that terminator, or 0 when text ends without one. CRLF is matched
// as a single terminator before a lone CR or LF is considered.
func nextLine(text []byte) (line []byte, eol int) {
	for i, c := range text {
		switch c {
		case '\n':
			return text[:i], 1
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				return text[:i], 2
			}
			return text[:i], 1
		}
	}
	return text, 0
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

// trimTrailingSpace drops spaces and tabs from the end of line.
func trimTrailingSpace(line []byte) []byte {
	for len(line) > 0 && isSpace(line[len(line)-1]) {
		line = line[:len(line)-1]
	}
	return line
}

// decodeBody joins the lines of body and decodes them into dst. With a nil
// dst nothing is written and only the decoded length is computed.
func decodeBody(dst, body []byte) (int, error) {
	var d quadDecoder
	for len(body) > 0 {
		line, eol := nextLine(body)
		body = body[len(line)+eol:]
		for _, c := range trimTrailingSpace(line) {
			if isSpace(c) {
				return 0, ErrInvalidBase64Character
			}
			if err := d.push(dst, c); err != nil {
				return 0, err
			}
		}
	}
	return d.finish()
}
