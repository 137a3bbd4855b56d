// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"errors"

	"github.com/cloudflare/cfssl/crypto/pkcs7"

	"github.com/H0llyW00dzZ/pem-codec/src/pem"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block label is not the expected certificate label.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")
)

// Certificate provides methods to decode and encode [X.509] certificates
// through the RFC 7468 codec. It keeps the codec used for encoding and the
// expected block label.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Certificate struct {
	codec         *pem.Codec
	certBlockType string
}

// New creates a new Certificate that encodes with LF line endings and 64
// character lines.
func New() *Certificate {
	// The default options are always valid.
	codec, _ := pem.New()
	return NewWithCodec(codec)
}

// NewWithCodec creates a new Certificate that encodes with codec.
func NewWithCodec(codec *pem.Codec) *Certificate {
	return &Certificate{
		codec:         codec,
		certBlockType: pem.LabelCertificate,
	}
}

// IsPEM checks if data starts with a well-formed PEM block of any label.
func (c *Certificate) IsPEM(data []byte) bool {
	_, err := c.codec.DecodedLen(data)
	return err == nil
}

// decodePEMBlock decodes the block located by b and checks its label.
func (c *Certificate) decodePEMBlock(data []byte, b pem.Bounds) ([]byte, error) {
	if string(b.Label) != c.certBlockType {
		return nil, ErrInvalidBlockType
	}
	block := data[b.Begin:b.End]
	n, err := c.codec.DecodedLen(block)
	if err != nil {
		return nil, ErrInvalidPEMBlock
	}
	der := make([]byte, n)
	if _, _, err := c.codec.Decode(der, block); err != nil {
		return nil, ErrInvalidPEMBlock
	}
	return der, nil
}

// DecodeMultiple decodes one or more certificates from data.
func (c *Certificate) DecodeMultiple(data []byte) ([]*x509.Certificate, error) {
	if c.IsPEM(data) {
		var certs []*x509.Certificate

		for len(data) > 0 {
			b, err := pem.Scan(data)
			if err != nil {
				break
			}

			der, err := c.decodePEMBlock(data, b)
			if err != nil {
				return nil, err
			}

			cert, err := x509.ParseCertificate(der)
			if err != nil {
				return nil, ErrParseCertificate
			}

			certs = append(certs, cert)
			data = data[b.End:]
		}

		return certs, nil
	}

	certs, err := x509.ParseCertificates(data)
	if err != nil {
		return nil, ErrParseCertificate
	}

	return certs, nil
}

// Decode decodes a single certificate from data. PEM input is unwrapped first;
// DER and PKCS7 are tried in that order.
func (c *Certificate) Decode(data []byte) (*x509.Certificate, error) {
	if c.IsPEM(data) {
		b, err := pem.Scan(data)
		if err != nil {
			return nil, ErrInvalidPEMBlock
		}
		der, err := c.decodePEMBlock(data, b)
		if err != nil {
			return nil, err
		}

		data = der
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates[0], nil
}

// EncodePEM encodes a certificate to PEM format.
func (c *Certificate) EncodePEM(cert *x509.Certificate) ([]byte, error) {
	return c.codec.EncodeToMemory(c.certBlockType, cert.Raw)
}

// EncodeDER encodes a certificate to DER format.
func (c *Certificate) EncodeDER(cert *x509.Certificate) []byte { return cert.Raw }

// EncodeMultiplePEM encodes multiple certificates to PEM format. The output
// buffer is sized once from the exact length of every block.
func (c *Certificate) EncodeMultiplePEM(certs []*x509.Certificate) ([]byte, error) {
	size := 0
	for _, cert := range certs {
		n, err := c.codec.EncodedLen(c.certBlockType, len(cert.Raw))
		if err != nil {
			return nil, err
		}
		size += n
	}

	data := make([]byte, size)
	w := 0
	for _, cert := range certs {
		n, err := c.codec.Encode(data[w:], c.certBlockType, cert.Raw)
		if err != nil {
			return nil, err
		}
		w += n
	}

	return data[:w], nil
}

// EncodeMultipleDER encodes multiple certificates to DER format.
func (c *Certificate) EncodeMultipleDER(certs []*x509.Certificate) []byte {
	var data []byte

	for _, cert := range certs {
		data = append(data, c.EncodeDER(cert)...)
	}

	return data
}
