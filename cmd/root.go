package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"thoreinstein.com/vcsroot/pkg/bootstrap"
	"thoreinstein.com/vcsroot/pkg/config"
	"thoreinstein.com/vcsroot/pkg/errors"
	"thoreinstein.com/vcsroot/pkg/findroot"
)

var cfgFile string
var verbose bool
var appConfig *config.Config

var searchMode findroot.Mode
var spanFileSystems bool

// modeValue adapts findroot.Mode to the pflag.Value interface.
type modeValue struct {
	mode *findroot.Mode
}

var _ pflag.Value = modeValue{}

func (v modeValue) String() string { return v.mode.String() }

func (v modeValue) Set(s string) error {
	mode, err := findroot.ParseMode(s)
	if err != nil {
		return err
	}
	*v.mode = mode
	return nil
}

func (v modeValue) Type() string { return "mode" }

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vcsroot [directory]",
	Short: "Locate the project root of a directory",
	Long: `vcsroot walks from a starting directory toward the filesystem root and
prints the first ancestor that contains a version control entry
(.git, _darcs, .hg, .bzr or .svn).

By default the search stops when it would cross onto another filesystem
and reports the match closest to the starting directory. Pass a directory
as the argument to search from somewhere other than the current one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// 1. Pre-parse global flags to initialize config early.
	cfgFile, verbose = bootstrap.PreParseGlobalFlags(os.Args)

	// 2. Initialize configuration (bootstrap)
	if err := initConfig(); err != nil {
		cobra.CheckErr(err)
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		_ = initConfig()
	})

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "C", "", "config file (default is $HOME/.config/vcsroot/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().VarP(modeValue{&searchMode}, "mode", "m", "which matching ancestor to report (closest|farthest)")
	rootCmd.Flags().BoolVarP(&spanFileSystems, "span-file-systems", "s", false, "keep searching past filesystem boundaries")

	if !findroot.DeviceCheckSupported() {
		// Device numbers are meaningless here, every search spans.
		_ = rootCmd.Flags().MarkHidden("span-file-systems")
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := appConfig
	if cfg == nil {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}
	}

	start, err := resolveStartDir(args)
	if err != nil {
		return err
	}

	opts := findroot.Options{
		Mode:            cfg.SearchMode(),
		SpanFileSystems: cfg.Search.SpanFileSystems,
		Logger:          searchLogger(),
	}

	// Flags beat the config file.
	if cmd.Flags().Changed("mode") {
		opts.Mode = searchMode
	}
	if cmd.Flags().Changed("span-file-systems") {
		opts.SpanFileSystems = spanFileSystems
	}

	root, found, err := findroot.Find(start, opts)
	if err != nil {
		return err
	}
	if !found {
		return errors.Newf("found no project root in ancestors of %s", start)
	}

	fmt.Println(root)
	return nil
}

// searchLogger returns a debug logger when --verbose is set, nil otherwise.
func searchLogger() *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error
	appConfig, verbose, err = bootstrap.InitConfig(cfgFile, verbose)
	return err
}

// loadConfig returns the latest configuration derived from viper.
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// resetConfig clears the cached configuration.
// This is primarily used in tests to ensure each test starts with a fresh config.
func resetConfig() {
	appConfig = nil
	bootstrap.Reset()
	viper.Reset()
}
