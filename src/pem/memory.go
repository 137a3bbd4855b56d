// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pem

// Block is a decoded PEM block owning its memory.
type Block struct {
	Label string
	Bytes []byte
}

// EncodeToMemory returns the PEM document for label and data in a buffer of
// exactly the required size.
func (c *Codec) EncodeToMemory(label string, data []byte) ([]byte, error) {
	n, err := c.EncodedLen(label, len(data))
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := c.Encode(buf, label, data); err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodeToMemory decodes the first block in text into newly allocated memory
// and returns it together with the text following the block.
func DecodeToMemory(text []byte) (*Block, []byte, error) {
	b, err := Scan(text)
	if err != nil {
		return nil, text, err
	}
	body := b.Body(text)
	n, err := DecodedLen(body)
	if err != nil {
		return nil, text, err
	}
	data := make([]byte, n)
	if n > 0 {
		if _, err := decodeBody(data, body); err != nil {
			return nil, text, err
		}
	}
	return &Block{Label: string(b.Label), Bytes: data}, text[b.End:], nil
}
