// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/pem-codec/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/pem-codec/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/pem-codec/src/logger"
	"github.com/H0llyW00dzZ/pem-codec/src/pem"
)

var (
	// OperationPerformed reports whether a command reached its run stage.
	OperationPerformed bool
	// OperationPerformedSuccessfully reports whether that command finished without error.
	OperationPerformedSuccessfully bool
	// ErrorLog is where the caller should report the error returned by
	// [Execute]. It follows --log-format and is never silenced by --quiet.
	ErrorLog logger.Logger
)

var (
	// ErrLabelRequired is returned when neither --label nor the config supplies a label.
	ErrLabelRequired = errors.New("cli: label is required (use --label or defaults.label)")
	// ErrNegativeSize is returned when size encode is given a negative payload length.
	ErrNegativeSize = errors.New("cli: payload size must not be negative")
	// ErrConflictingFormats is returned when inspect is asked for more than one output format.
	ErrConflictingFormats = errors.New("cli: --pem, --der and --table are mutually exclusive")
	// ErrInvalidLogFormat is returned for a --log-format other than text or json.
	ErrInvalidLogFormat = errors.New("cli: log format must be text or json")
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	version    string
	log        logger.Logger
	configPath string
	config     *Config
	logFormat  string
	quiet      bool
}

// Execute runs the root command with the process arguments. It returns the
// command error instead of exiting so the caller decides the exit code.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	OperationPerformed = false
	OperationPerformedSuccessfully = false
	ErrorLog = log

	return newRootCmd(version, log).ExecuteContext(ctx)
}

// setupLogging replaces the status logger according to --log-format and
// --quiet. Status messages are written to w.
func (a *app) setupLogging(w io.Writer) error {
	switch a.logFormat {
	case "text":
		if a.quiet {
			a.log = logger.NewJSONLogger(nil, true)
		}
	case "json":
		a.log = logger.NewJSONLogger(w, a.quiet)
		ErrorLog = logger.NewJSONLogger(w, false)
	default:
		return ErrInvalidLogFormat
	}
	return nil
}

// newRootCmd builds the command tree.
func newRootCmd(version string, log logger.Logger) *cobra.Command {
	a := &app{version: version, log: log}
	exe := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:           exe,
		Short:         "RFC 7468 PEM encoder and decoder",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: fmt.Sprintf(`  %[1]s encode -l CERTIFICATE -f cert.der -o cert.pem
  %[1]s decode -f cert.pem -o cert.der
  %[1]s scan -f bundle.pem --table`, exe),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setupLogging(cmd.ErrOrStderr()); err != nil {
				return err
			}
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.config = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (.json, .yaml, .yml); defaults to $"+configEnv)
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "status message format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress status messages")

	rootCmd.AddCommand(
		a.newEncodeCmd(),
		a.newDecodeCmd(),
		a.newSizeCmd(),
		a.newScanCmd(),
		a.newInspectCmd(),
	)

	return rootCmd
}

// run wraps a command body with the operation bookkeeping read by main.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		OperationPerformed = true
		if err := fn(cmd, args); err != nil {
			return err
		}
		OperationPerformedSuccessfully = true
		return nil
	}
}

// readInput reads inputFile, or stdin when it is empty, and passes the bytes to fn.
func (a *app) readInput(cmd *cobra.Command, inputFile string, fn func(data []byte) error) error {
	var r io.Reader = cmd.InOrStdin()
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("error reading input file: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := gc.ReadAll(r, a.config.Limits.MaxInputBytes, fn); err != nil {
		if errors.Is(err, gc.ErrInputTooLarge) {
			return fmt.Errorf("input larger than %d bytes: %w", a.config.Limits.MaxInputBytes, err)
		}
		return err
	}
	return nil
}

// writeOutput writes data to outputFile, or stdout when it is empty.
func writeOutput(cmd *cobra.Command, outputFile string, data []byte) error {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("error writing to output file: %w", err)
		}
		return nil
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}

// encodingFlags are the flags shared by the commands that produce PEM text.
type encodingFlags struct {
	label string
	eol   string
	width int
}

func (f *encodingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.label, "label", "l", "", "block label, e.g. CERTIFICATE (default: defaults.label)")
	f.registerLayout(cmd)
}

// registerLayout adds only the line ending and width flags, for commands
// whose label is fixed.
func (f *encodingFlags) registerLayout(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.eol, "eol", "lf", "line ending: lf, crlf or cr")
	cmd.Flags().IntVarP(&f.width, "width", "w", pem.DefaultLineWidth, "base64 characters per line")
}

// resolve merges the flags with the config and returns the label and codec to use.
func (f *encodingFlags) resolve(cmd *cobra.Command, cfg *Config) (string, *pem.Codec, error) {
	label := f.label
	if label == "" {
		label = cfg.Defaults.Label
	}
	if label == "" {
		return "", nil, ErrLabelRequired
	}

	codec, err := f.codec(cmd, cfg)
	if err != nil {
		return "", nil, err
	}
	return label, codec, nil
}

// codec builds a codec from the line ending and width flags, falling back to
// the config for flags that were not set.
func (f *encodingFlags) codec(cmd *cobra.Command, cfg *Config) (*pem.Codec, error) {
	eolName := f.eol
	if !cmd.Flags().Changed("eol") {
		eolName = cfg.Defaults.EOL
	}
	eol, err := pem.ParseEOL(eolName)
	if err != nil {
		return nil, err
	}

	width := f.width
	if !cmd.Flags().Changed("width") {
		width = cfg.Defaults.LineWidth
	}

	return pem.New(pem.WithEOL(eol), pem.WithLineWidth(width))
}
