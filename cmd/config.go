package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"thoreinstein.com/vcsroot/pkg/config"
)

var configInitForce bool

// configHeader explains the keys of a freshly written config file.
const configHeader = `# vcsroot configuration.
#
# search.mode               which matching ancestor to report: closest or farthest
# search.span_file_systems  keep searching past filesystem boundaries
# update.repository         owner/name override for the release source
# update.prerelease         consider pre-release versions when updating

`

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vcsroot configuration",
	Long: `Manage the vcsroot configuration file.

The configuration is read from $HOME/.config/vcsroot/config.toml unless
--config points somewhere else. Every key can also be set through
environment variables with the VCSROOT_ prefix, for example
VCSROOT_SEARCH_MODE=farthest.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

// configFilePath returns the file config init writes to, honoring --config.
func configFilePath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, ".config", "vcsroot", "config.toml"), nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return errors.Newf("config file already exists at %s (use --force to overwrite)", path)
	}

	data, err := toml.Marshal(config.Default())
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	fmt.Println("Wrote", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := appConfig
	if cfg == nil {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	fmt.Print(string(data))
	return nil
}
