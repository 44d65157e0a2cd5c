package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mrz1836/quill/internal/config"
	"github.com/mrz1836/quill/internal/output"
	quillerr "github.com/mrz1836/quill/pkg/errors"
)

// configCmd is the parent command for configuration operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and modify quill configuration settings.`,
}

// configInitCmd initializes the configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long: `Create a default configuration file at ~/.quill/config.yaml.

If a configuration file already exists, this command will not overwrite it
unless --force is specified.`,
	Example: `  quill config init
  quill config init --force`,
	RunE: runConfigInit,
}

// configShowCmd shows the current configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the effective configuration, after environment overrides.`,
	Example: `  quill config show
  quill config show -o json`,
	RunE: runConfigShow,
}

// configGetCmd gets a specific configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Get a configuration value",
	Long: `Get a specific configuration value by its dotted path.`,
	Example: `  quill config get signing.output
  quill config get security.memory_lock
  quill config get logging.level`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configSetCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Set a configuration value",
	Long: `Set a specific configuration value by its dotted path.
The configuration file is updated immediately.`,
	Example: `  quill config set signing.output fields
  quill config set signing.strict_fields true
  quill config set logging.level debug`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var configForce bool

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.GroupID = "config"
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite existing configuration")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	configPath := config.Path(cfg.Home)

	if _, err := os.Stat(configPath); err == nil && !configForce {
		return quillerr.WithSuggestion(
			quillerr.ErrGeneral,
			fmt.Sprintf("configuration already exists at %s. Use --force to overwrite.", configPath),
		)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	defaultCfg := config.Defaults()
	defaultCfg.Home = cfg.Home

	if err := config.Save(defaultCfg, configPath); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	w := cmd.OutOrStdout()
	out(w, "Configuration initialized at %s\n", configPath)
	outln(w)
	outln(w, "Edit this file to configure:")
	outln(w, "  - signing.output: hex or fields")
	outln(w, "  - signing.strict_fields: reject unknown transaction keys")
	outln(w, "  - security.memory_lock: lock key buffers in RAM")
	outln(w, "  - logging.level: Log level (off/error/debug)")

	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if isJSON(formatter) {
		return displayConfigJSON(w, cfg)
	}
	return displayConfigText(w, cfg)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	value, err := cfg.Get(args[0])
	if err != nil {
		return err
	}
	outln(cmd.OutOrStdout(), value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path, value := args[0], args[1]

	// Edit the file, not the effective config, so environment overrides are not persisted.
	configPath := config.Path(cfg.Home)
	fileCfg, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, quillerr.ErrConfigNotFound) {
			return err
		}
		fileCfg = config.Defaults()
		fileCfg.Home = cfg.Home
	}

	if err := fileCfg.Set(path, value); err != nil {
		return err
	}
	if err := fileCfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(fileCfg, configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	out(cmd.OutOrStdout(), "Set %s = %s\n", path, value)
	return nil
}

// displayConfigText shows every config path and its value.
func displayConfigText(w io.Writer, c *config.Config) error {
	table := output.NewTable("KEY", "VALUE")
	for _, key := range config.Keys() {
		value, err := c.Get(key)
		if err != nil {
			return err
		}
		table.AddRow(key, value)
	}
	return table.Render(w)
}

// displayConfigJSON shows the config as a flat object keyed by path.
func displayConfigJSON(w io.Writer, c *config.Config) error {
	values := make(map[string]string, len(config.Keys()))
	for _, key := range config.Keys() {
		value, err := c.Get(key)
		if err != nil {
			return err
		}
		values[key] = value
	}
	return writeJSON(w, values)
}
