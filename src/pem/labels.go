// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pem

// Labels registered by RFC 7468 section 4 onward.
const (
	LabelCertificate          = "CERTIFICATE"
	LabelCRL                  = "X509 CRL"
	LabelCertificateRequest   = "CERTIFICATE REQUEST"
	LabelPKCS7                = "PKCS7"
	LabelCMS                  = "CMS"
	LabelPrivateKey           = "PRIVATE KEY"
	LabelEncryptedPrivateKey  = "ENCRYPTED PRIVATE KEY"
	LabelAttributeCertificate = "ATTRIBUTE CERTIFICATE"
	LabelPublicKey            = "PUBLIC KEY"
)
