// Package cli implements the quill command-line interface.
//
// This package uses global variables to manage CLI state, which is the standard
// pattern for Cobra-based CLI applications. The globals are initialized in
// PersistentPreRunE and cleaned up in PersistentPostRun.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mrz1836/quill/internal/config"
	"github.com/mrz1836/quill/internal/output"
	quillerr "github.com/mrz1836/quill/pkg/errors"
)

var (
	// Global flags
	homeDir      string
	outputFormat string
	verbose      bool

	// Global state initialized in PersistentPreRunE
	cfg       *config.Config
	logger    *config.Logger
	formatter *output.Formatter
	cmdCtx    *CommandContext

	buildInfo BuildInfo
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Offline signer for legacy Ethereum transactions",
	Long: `Quill encodes, signs and verifies legacy (pre-EIP-155) Ethereum transactions.

It turns a JSON transaction record into its canonical RLP encoding, signs the
keccak-256 hash with a secp256k1 key, and recovers the signing public key from
a raw transaction plus a detached signature. Nothing is sent over the network.`,
	Example: `  QUILL_PRIVATE_KEY=0x... quill sign --tx tx.json
  quill sign-hash 0x1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8
  quill recover --raw 0xf85f... --v 27 --r 0x... --s 0x...
  quill rlp decode 0xc88363617483646f67`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initGlobals(cmd)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cleanup()
	},
}

// Execute runs the root command with the given build information.
func Execute(info BuildInfo) error {
	buildInfo = info
	rootCmd.Version = formatVersion(info)
	enrichCommandTree()

	if err := rootCmd.Execute(); err != nil {
		formatErr(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

// formatErr prints err to w in the active output format, text before
// the formatter exists.
func formatErr(w io.Writer, err error) {
	format := output.FormatText
	if formatter != nil {
		format = formatter.Format()
	}
	_ = output.FormatError(w, err, format)
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	return quillerr.ExitCode(err)
}

// initGlobals loads configuration and builds the logger, formatter and
// command context. A missing config file means defaults; a broken one is an error.
func initGlobals(cmd *cobra.Command) error {
	home := homeDir
	if home == "" {
		home = os.Getenv(config.EnvHome)
	}
	if home == "" {
		home = config.DefaultHome()
	}

	var err error
	cfg, err = config.Load(config.Path(home))
	switch {
	case err == nil:
	case errors.Is(err, quillerr.ErrConfigNotFound):
		cfg = config.Defaults()
		cfg.Home = home
		cfg.Logging.File = filepath.Join(home, "quill.log")
	default:
		return err
	}

	config.ApplyEnvironment(cfg)

	// Flags win over file and environment
	if homeDir != "" {
		cfg.Home = homeDir
	}
	if verbose {
		cfg.Output.Verbose = true
		cfg.Logging.Level = config.LogLevelDebug.String()
	}
	if outputFormat != "" && outputFormat != string(output.FormatAuto) {
		cfg.Output.DefaultFormat = outputFormat
	}

	newLogger := config.NewLogger
	if cfg.Logging.JSON {
		newLogger = config.NewStructuredLogger
	}
	logger, err = newLogger(config.ParseLogLevel(cfg.Logging.Level), cfg.Logging.File)
	if err != nil {
		logger = config.NullLogger()
	}

	explicitFormat := output.ParseFormat(cfg.Output.DefaultFormat)
	detectedFormat := output.DetectFormat(cmd.OutOrStdout(), explicitFormat)
	formatter = output.NewFormatter(detectedFormat)

	cmdCtx = NewCommandContext(cfg, logger, formatter)
	return nil
}

// cleanup releases resources.
func cleanup() {
	if logger != nil {
		_ = logger.Close()
	}
}

// Config returns the global configuration.
func Config() *config.Config {
	return cfg
}

// Logger returns the global logger.
func Logger() *config.Logger {
	return logger
}

// Formatter returns the global output formatter.
func Formatter() *output.Formatter {
	return formatter
}

// Context returns the command context built for the current invocation.
func Context() *CommandContext {
	return cmdCtx
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "signing", Title: "Signing:"},
		&cobra.Group{ID: "encoding", Title: "Encoding:"},
		&cobra.Group{ID: "config", Title: "Configuration:"},
	)
	rootCmd.SetHelpCommandGroupID("config")
	rootCmd.SetCompletionCommandGroupID("config")

	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "quill data directory (default: ~/.quill)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "auto", "output format: text, json, auto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
