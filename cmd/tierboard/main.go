package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lus720/TierMaker-sub001/app"
	"github.com/lus720/TierMaker-sub001/board"
	"github.com/lus720/TierMaker-sub001/config"
	"github.com/lus720/TierMaker-sub001/sound"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	var (
		configPath string
		verbose    bool
		mute       bool
	)

	root := &cobra.Command{
		Use:          "tierboard [board.toml]",
		Short:        "tierboard is a terminal tier-list editor",
		Long:         `tierboard edits tier-list boards in the terminal: drag cards between tier rows with the mouse, then save the board back to TOML.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "board.toml"
			if len(args) == 1 {
				path = args[0]
			}
			return run(path, configPath, verbose, mute)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("tierboard %s (%s)\n", version, commit))
	root.Flags().StringVar(&configPath, "config", defaultConfigPath(), "config file")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().BoolVar(&mute, "mute", false, "disable sound")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(boardPath, configPath string, verbose, mute bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		// A broken config falls back to defaults; still worth saying
		fmt.Fprintf(os.Stderr, "config ignored: %v\n", err)
	}

	logger := newLogger(cfg.LogFile, verbose)

	b, err := board.Load(boardPath)
	if err != nil {
		return err
	}

	snd := sound.NewPlayer(cfg.Sound && !mute)
	if !snd.Enabled() {
		logger.Debug("audio disabled")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents, tcell.MouseMotionEvents)

	// Restore the terminal even if the editor crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "tierboard crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	logger.Info("editor started", "board", boardPath)
	return app.New(screen, b, cfg, snd, logger, boardPath).Run()
}

// newLogger writes to the configured log file; the terminal itself
// belongs to tcell, so there is nowhere else to log interactively
func newLogger(path string, verbose bool) *log.Logger {
	var w io.Writer = io.Discard
	if path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			w = f
		}
	}
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tierboard.toml"
	}
	return dir + "/tierboard/config.toml"
}
