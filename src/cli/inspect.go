// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"crypto/x509"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	x509certs "github.com/H0llyW00dzZ/pem-codec/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/pem-codec/src/pem"
)

// decodeCertificates reads every certificate in data. PEM bundles are
// decoded through the codec; otherwise DER and PKCS7 are tried.
func decodeCertificates(data []byte) ([]*x509.Certificate, error) {
	decoder := x509certs.New()
	if decoder.IsPEM(data) {
		return decoder.DecodeMultiple(data)
	}
	cert, err := decoder.Decode(data)
	if err != nil {
		return nil, err
	}
	return []*x509.Certificate{cert}, nil
}

// summarize lists certificates one per line, or as a markdown table.
func summarize(certs []*x509.Certificate, asTable bool) ([]byte, error) {
	if asTable {
		rows := make([][]string, 0, len(certs))
		for i, cert := range certs {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				cert.Subject.CommonName,
				cert.Issuer.CommonName,
				cert.NotAfter.Format("2006-01-02"),
			})
		}
		out, err := renderTable([]string{"#", "Subject", "Issuer", "Valid Until"}, rows)
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	}

	var sb strings.Builder
	for i, cert := range certs {
		fmt.Fprintf(&sb, "%d\tsubject=%s\tissuer=%s\tnotAfter=%s\n",
			i+1, cert.Subject, cert.Issuer, cert.NotAfter.Format("2006-01-02"))
	}
	return []byte(sb.String()), nil
}

func (a *app) newInspectCmd() *cobra.Command {
	var (
		layout     encodingFlags
		inputFile  string
		outputFile string
		asTable    bool
		asPEM      bool
		asDER      bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize or re-encode the certificates in a PEM, DER or PKCS7 input",
		Long: `Inspect parses every certificate in the input. By default it prints a
summary; --pem re-emits the certificates as a PEM bundle using --eol and
--width, and --der writes them as concatenated DER.`,
		Args: cobra.NoArgs,
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		formats := 0
		for _, set := range []bool{asTable, asPEM, asDER} {
			if set {
				formats++
			}
		}
		if formats > 1 {
			return ErrConflictingFormats
		}

		var encoder *x509certs.Certificate
		if asPEM {
			codec, err := layout.codec(cmd, a.config)
			if err != nil {
				return err
			}
			encoder = x509certs.NewWithCodec(codec)
		}

		return a.readInput(cmd, inputFile, func(data []byte) error {
			certs, err := decodeCertificates(data)
			if err != nil {
				return fmt.Errorf("error decoding certificate: %w", err)
			}

			var out []byte
			switch {
			case asPEM:
				out, err = encoder.EncodeMultiplePEM(certs)
			case asDER:
				out = x509certs.New().EncodeMultipleDER(certs)
			default:
				out, err = summarize(certs, asTable)
			}
			if err != nil {
				return err
			}

			if err := writeOutput(cmd, outputFile, out); err != nil {
				return err
			}
			if asPEM || asDER {
				a.log.Printf("Wrote %d certificate(s)", len(certs))
			}
			return nil
		})
	})

	layout.registerLayout(cmd)
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "input file (default: stdin)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	cmd.Flags().BoolVar(&asTable, "table", false, "display certificates as markdown table")
	cmd.Flags().BoolVar(&asPEM, "pem", false, "re-encode the certificates as a "+pem.LabelCertificate+" bundle")
	cmd.Flags().BoolVarP(&asDER, "der", "d", false, "write the certificates as concatenated DER")

	return cmd
}
