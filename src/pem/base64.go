// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pem

import "encoding/base64"

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	padChar  = '='
	invalid  = 0xff
)

// decodeMap maps an alphabet character to its 6-bit value and everything else to invalid.
var decodeMap = func() (m [256]byte) {
	for i := range m {
		m[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = byte(i)
	}
	return m
}()

// EncodeBase64 writes the padded standard Base64 encoding of src to dst and
// returns the number of bytes written, which is always [Base64Len](len(src)).
func EncodeBase64(dst, src []byte) (int, error) {
	n := Base64Len(len(src))
	if len(dst) < n {
		return 0, ErrBufferTooSmall
	}
	base64.StdEncoding.Encode(dst, src)
	return n, nil
}

// DecodeBase64 decodes padded standard Base64 from src into dst and returns
// the number of bytes written. src must not contain whitespace or line breaks.
// The whole input is validated before the first byte is written.
func DecodeBase64(dst, src []byte) (int, error) {
	var d quadDecoder
	for _, c := range src {
		if err := d.push(nil, c); err != nil {
			return 0, err
		}
	}
	n, err := d.finish()
	if err != nil {
		return 0, err
	}
	if len(dst) < n {
		return 0, ErrBufferTooSmall
	}

	d = quadDecoder{}
	for _, c := range src {
		_ = d.push(dst, c)
	}
	return n, nil
}

// quadDecoder consumes Base64 characters one at a time and emits up to three
// bytes per completed group of four. A nil dst only counts output bytes, which
// lets the same code path validate and size the input before anything is
// written.
type quadDecoder struct {
	quad [4]byte
	n    int  // characters in quad, padding included
	pad  int  // '=' characters in quad
	done bool // a padded group closed the stream
	out  int  // bytes produced so far
}

func (d *quadDecoder) push(dst []byte, c byte) error {
	if d.done {
		return ErrInvalidPadding
	}
	if c == padChar {
		// "x===" and "====" can never yield a whole byte.
		if d.n < 2 {
			return ErrInvalidPadding
		}
		d.quad[d.n] = 0
		d.pad++
	} else {
		if d.pad > 0 {
			return ErrInvalidPadding
		}
		v := decodeMap[c]
		if v == invalid {
			return ErrInvalidBase64Character
		}
		d.quad[d.n] = v
	}
	d.n++
	if d.n == len(d.quad) {
		return d.flush(dst)
	}
	return nil
}

func (d *quadDecoder) flush(dst []byte) error {
	val := uint32(d.quad[0])<<18 | uint32(d.quad[1])<<12 | uint32(d.quad[2])<<6 | uint32(d.quad[3])

	// Bits beyond the last whole byte must be zero, otherwise several
	// encodings would map to the same payload.
	switch d.pad {
	case 1:
		if val&0xff != 0 {
			return ErrInvalidPadding
		}
	case 2:
		if val&0xffff != 0 {
			return ErrInvalidPadding
		}
	}

	nb := 3 - d.pad
	if dst != nil {
		dst[d.out] = byte(val >> 16)
		if nb > 1 {
			dst[d.out+1] = byte(val >> 8)
		}
		if nb > 2 {
			dst[d.out+2] = byte(val)
		}
	}
	d.out += nb
	d.done = d.pad > 0
	d.n, d.pad = 0, 0
	return nil
}

// finish reports the number of bytes produced, or ErrInvalidBodyLength when
// the input stopped inside a group.
func (d *quadDecoder) finish() (int, error) {
	if d.n != 0 {
		return 0, ErrInvalidBodyLength
	}
	return d.out, nil
}
