// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs decodes and encodes [X.509] certificates on top of the
// RFC 7468 codec in package pem. Input may be a PEM bundle, DER, or [PKCS7];
// output is a PEM bundle written with the codec's line ending and width, or
// concatenated DER. The CLI uses it for the inspect command.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
package x509certs
