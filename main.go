// Package main provides the entry point for the voicereader CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/pustakai/voicereader/speech"
	"github.com/pustakai/voicereader/ui"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	summaryNames = []string{"summary.md", "SUMMARY.md", "Summary.md"}

	configFile string
	style      string
	width      uint
	autoRead   bool
	prefsPath  string

	rootCmd = &cobra.Command{
		Use:   "voicereader [SUMMARY FILE]",
		Short: "Read AI book summaries aloud from the terminal",
		Long: paragraph(
			fmt.Sprintf("\nRender a book summary in the terminal and %s.", keyword("read it aloud")),
		),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOptions(cmd)
		},
		RunE: execute,
	}
)

// summaryFromArg resolves the summary file to read. With no argument the
// current directory is searched for a conventionally named summary.
func summaryFromArg(args []string) (string, error) {
	if len(args) == 1 {
		p, err := filepath.Abs(args[0])
		if err != nil {
			return "", fmt.Errorf("unable to get absolute path: %w", err)
		}
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("unable to open summary: %w", err)
		}
		return p, nil
	}

	for _, name := range summaryNames {
		if _, err := os.Stat(name); err == nil {
			return filepath.Abs(name)
		}
	}
	return "", errors.New("no summary file given and none found in the current directory")
}

// validateStyle checks if the style is a default style, if not, checks that
// the custom style exists.
func validateStyle(style string) error {
	if style != "auto" && styles.DefaultStyles[style] == nil {
		if _, err := os.Stat(style); errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("specified style does not exist: %s", style)
		} else if err != nil {
			return fmt.Errorf("unable to stat file: %w", err)
		}
	}
	return nil
}

func validateOptions(cmd *cobra.Command) error {
	// grab config values from Viper
	width = viper.GetUint("width")
	autoRead = viper.GetBool("autoread")
	prefsPath = viper.GetString("preferences")

	style = viper.GetString("style")
	if err := validateStyle(style); err != nil {
		return err
	}

	// Detect terminal width
	if !cmd.Flags().Changed("width") { //nolint:nestif
		if term.IsTerminal(int(os.Stdout.Fd())) && width == 0 {
			w, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err == nil {
				width = uint(w) //nolint:gosec
			}
			if width > 120 {
				width = 120
			}
		}
		if width == 0 {
			width = 80
		}
	}
	return nil
}

func execute(_ *cobra.Command, args []string) error {
	path, err := summaryFromArg(args)
	if err != nil {
		return err
	}
	return runTUI(path)
}

func runTUI(path string) error {
	// Read environment to get debugging stuff
	cfg, err := env.ParseAs[ui.Config]()
	if err != nil {
		return fmt.Errorf("error parsing config: %v", err)
	}

	// use style set in env, or the flag/config value if unset or invalid
	if cfg.GlamourStyle == "" || validateStyle(cfg.GlamourStyle) != nil {
		cfg.GlamourStyle = style
	}

	cfg.Path = path
	cfg.GlamourMaxWidth = width

	if cfg.PreferencesPath == "" {
		cfg.PreferencesPath = prefsPath
	}
	if cfg.PreferencesPath == "" {
		p, err := speech.DefaultStorePath()
		if err != nil {
			return fmt.Errorf("unable to locate preference path: %w", err)
		}
		cfg.PreferencesPath = p
	}

	// An --auto-read flag or config entry seeds the stored preference so
	// first launches can opt in without opening settings.
	if autoRead {
		store := speech.NewStore(cfg.PreferencesPath)
		p := store.Load()
		if !p.AutoRead {
			p.AutoRead = true
			store.Save(p)
		}
	}

	// Run Bubble Tea program
	model, err := ui.NewProgram(cfg).Run()
	if err != nil {
		return fmt.Errorf("unable to run tui program: %w", err)
	}
	if m, ok := model.(ui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.Flags().StringVarP(&style, "style", "s", styles.AutoStyle, "style name or JSON path")
	rootCmd.Flags().UintVarP(&width, "width", "w", 0, "word-wrap at width (set to 0 to disable)")
	rootCmd.Flags().BoolVarP(&autoRead, "auto-read", "a", false, "start reading aloud automatically")
	rootCmd.Flags().StringVar(&prefsPath, "preferences", "", "voice preference file path")

	// Config bindings
	_ = viper.BindPFlag("style", rootCmd.Flags().Lookup("style"))
	_ = viper.BindPFlag("width", rootCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("autoread", rootCmd.Flags().Lookup("auto-read"))
	_ = viper.BindPFlag("preferences", rootCmd.Flags().Lookup("preferences"))

	viper.SetDefault("style", styles.AutoStyle)
	viper.SetDefault("width", 0)
	viper.SetDefault("autoread", false)

	rootCmd.AddCommand(configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "voicereader")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not load find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "voicereader")}, dirs...)
	}

	if c := os.Getenv("VOICEREADER_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("voicereader")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("voicereader")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
		return
	}

	if viper.ConfigFileUsed() == "" {
		configFile = filepath.Join(dirs[0], "voicereader.yml")
	}
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}
