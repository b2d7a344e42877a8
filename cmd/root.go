package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/marcus/menu/internal/config"
	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string
	logFile string
	logSink io.Closer
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "menu",
	Short: "Keyboard and mouse selection for terminal menus",
	Long: `menu - drive a list selection engine from the terminal.

The demo command opens an interactive autocomplete prompt; replay feeds a
scripted sequence of key and mouse events through the engine and prints
every transition.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logFile)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
	// Runs after every command, failed ones included.
	cobra.OnFinalize(closeLogging)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&baseDir, "dir", "", "directory holding .menu/config.json (default: working directory)")
}

func initBaseDir() {
	if baseDir != "" {
		return
	}
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the base directory for the project
func getBaseDir() string {
	return baseDir
}

// setupLogging installs the default slog logger. The demo owns the
// terminal, so logs only go to a file; without one they are discarded.
func setupLogging(path string) error {
	var w io.Writer = io.Discard
	level := slog.LevelInfo
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w, logSink = f, f
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

// closeLogging closes the log file opened by setupLogging, if any.
func closeLogging() {
	if logSink == nil {
		return
	}
	logSink.Close()
	logSink = nil
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// settings resolves the menu settings for cmd: config file values, then any
// flags the user set explicitly. With --save the result is written back.
func settings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if f := cmd.Flags().Lookup("visible"); f != nil && f.Changed {
		n, err := cmd.Flags().GetInt("visible")
		if err != nil {
			return nil, err
		}
		cfg.VisibleCount = n
	}
	if f := cmd.Flags().Lookup("separate"); f != nil && f.Changed {
		sep, err := cmd.Flags().GetBool("separate")
		if err != nil {
			return nil, err
		}
		cfg.SeparateSelections = sep
	}
	slog.Debug("settings resolved", "visible", cfg.VisibleCount, "separate", cfg.SeparateSelections)

	if save, _ := cmd.Flags().GetBool("save"); save {
		if err := config.Save(getBaseDir(), cfg); err != nil {
			return nil, fmt.Errorf("save config: %w", err)
		}
		slog.Info("settings saved", "path", config.Path(getBaseDir()))
	}
	return cfg, nil
}

// addMenuFlags registers the flags shared by demo and replay.
func addMenuFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("visible", "n", config.DefaultVisibleCount, "number of visible items")
	cmd.Flags().Bool("separate", false, "keep keyboard and mouse selections independent")
	cmd.Flags().Bool("save", false, "store the resolved --visible/--separate settings in the config file")
}
