package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/confetti/config"
	"github.com/lixenwraith/confetti/logging"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// app carries state shared by all commands after PersistentPreRunE
type app struct {
	configPath string
	verbose    bool

	// Root command overrides, applied only when the flag was set
	duration  time.Duration
	count     int
	message   string
	fps       int
	sound     bool
	colorMode string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "confetti",
		Short: "Celebrate in the terminal",
		Long: `confetti draws a short burst of falling particles over a message and
removes it cleanly when the celebration ends or a quit key is pressed.

Configuration is read from a YAML file (see "confetti config") and may be
overridden by CONFETTI_* environment variables and command-line flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCelebrate(cmd.Context())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultConfigPath(), "config file path")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging (requires logging.file)")

	f := rootCmd.Flags()
	f.DurationVarP(&a.duration, "duration", "d", 0, "how long the overlay stays mounted")
	f.IntVarP(&a.count, "count", "n", 0, "number of particles")
	f.StringVarP(&a.message, "message", "m", "", "message shown under the overlay")
	f.IntVar(&a.fps, "fps", 0, "frames per second")
	f.BoolVar(&a.sound, "sound", false, "play a chime when the celebration starts")
	f.StringVar(&a.colorMode, "color", "", "color mode: auto, 256, truecolor")

	rootCmd.AddCommand(
		newBatchCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads configuration, applies changed flags and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("duration") {
		cfg.Confetti.Duration = a.duration.String()
	}
	if flags.Changed("count") {
		cfg.Confetti.Count = a.count
	}
	if flags.Changed("message") {
		cfg.Confetti.Message = a.message
	}
	if flags.Changed("fps") {
		cfg.Render.FPS = a.fps
	}
	if flags.Changed("sound") {
		cfg.Audio.Enabled = a.sound
	}
	if flags.Changed("color") {
		cfg.Render.ColorMode = a.colorMode
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "confetti", version)
		},
	}
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}
