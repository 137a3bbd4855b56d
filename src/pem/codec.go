// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pem

// Encode writes the PEM document for label and data to dst, using eol after
// every line and at most width Base64 characters per body line. It returns
// the number of bytes written, which always equals [EncodedLen].
//
// When dst is shorter than the document, Encode returns [ErrBufferTooSmall]
// and dst is left untouched.
func Encode(dst []byte, label string, data []byte, eol EOL, width int) (int, error) {
	n, err := EncodedLen(label, len(data), eol, width)
	if err != nil {
		return 0, err
	}
	if len(dst) < n {
		return 0, ErrBufferTooSmall
	}
	dst = dst[:n]

	w := putDelimiter(dst, beginPrefix, label, eol)
	chars, _ := EncodeBase64(dst[w:], data)
	w += spreadLines(dst[w:], chars, width, eol)
	w += putDelimiter(dst[w:], endPrefix, label, eol)
	return w, nil
}

// Decode decodes the first block in text into dst. It returns the block label,
// which aliases text, and the number of bytes written.
//
// The block is scanned and its body validated before anything is written.
// When dst is shorter than the payload, Decode returns [ErrBufferTooSmall]
// and dst is left untouched.
func Decode(dst, text []byte) (label []byte, n int, err error) {
	b, err := Scan(text)
	if err != nil {
		return nil, 0, err
	}
	body := b.Body(text)
	n, err = DecodedLen(body)
	if err != nil {
		return nil, 0, err
	}
	if len(dst) < n {
		return nil, 0, ErrBufferTooSmall
	}
	if n > 0 {
		if _, err = decodeBody(dst[:n], body); err != nil {
			return nil, 0, err
		}
	}
	return b.Label, n, nil
}

// Codec carries the encoding settings for a series of calls. It is immutable
// after [New] and safe for concurrent use.
type Codec struct {
	eol   EOL
	width int
}

// Option configures a [Codec].
type Option func(*Codec)

// WithEOL sets the end-of-line sequence written by the encoder.
func WithEOL(eol EOL) Option { return func(c *Codec) { c.eol = eol } }

// WithLineWidth sets the number of Base64 characters per body line.
func WithLineWidth(width int) Option { return func(c *Codec) { c.width = width } }

// New returns a Codec. Without options it produces strict RFC 7468 output:
// LF line endings and 64 characters per line.
func New(opts ...Option) (*Codec, error) {
	c := &Codec{
		eol:   LF,
		width: DefaultLineWidth,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.eol.Validate(); err != nil {
		return nil, err
	}
	if err := validateWidth(c.width); err != nil {
		return nil, err
	}
	return c, nil
}

// EOL returns the end-of-line sequence used by c.
func (c *Codec) EOL() EOL { return c.eol }

// LineWidth returns the body line width used by c.
func (c *Codec) LineWidth() int { return c.width }

// EncodedLen returns the exact output length of [Codec.Encode].
func (c *Codec) EncodedLen(label string, payloadLen int) (int, error) {
	return EncodedLen(label, payloadLen, c.eol, c.width)
}

// Encode is [Encode] with the settings of c.
func (c *Codec) Encode(dst []byte, label string, data []byte) (int, error) {
	return Encode(dst, label, data, c.eol, c.width)
}

// DecodedLen returns the exact payload length of the first block in text.
func (c *Codec) DecodedLen(text []byte) (int, error) {
	b, err := Scan(text)
	if err != nil {
		return 0, err
	}
	return DecodedLen(b.Body(text))
}

// Decode is [Decode]. Line endings are detected per line, so the settings of
// c do not affect decoding.
func (c *Codec) Decode(dst, text []byte) (label []byte, n int, err error) {
	return Decode(dst, text)
}
