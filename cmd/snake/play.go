package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagSpeed         string
	flagMute          bool
	flagNeckExemption bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play snake",
	Long: `Start playing the given rule variant (default: deluxe).

Controls:
  W/A/S/D, Arrows  - Steer
  M                - Toggle music
  R                - Restart (after game over)
  C                - Change color (after game over, deluxe)
  Del              - Start with a reset high score (title screen)
  Q/Esc            - Quit (color select, game over)
  Esc              - Quit from the title screen (Q starts a run there)
  Ctrl+C           - Exit immediately
  Ctrl+S           - Save a screenshot

Speed presets:
  slow    - 8 moves per second
  normal  - 10 moves per second
  fast    - 12 moves per second

Examples:
  snake play
  snake play classic
  snake play --speed fast
  snake play --neck-exemption
  snake play --mute --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable all sound")
	playCmd.Flags().BoolVar(&flagNeckExemption, "neck-exemption", false, "Moving onto the segment right behind the head is not a collision")
}

func runPlay(cmd *cobra.Command, args []string) error {
	variant := snake.Deluxe.ID
	if len(args) > 0 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q (run 'snake list' to see available variants)", variant)
	}

	tickRate, err := playTickRate()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("neck-exemption") {
		applyNeckExemption(variant, flagNeckExemption)
	}

	logFile, err := openLogFile(appConfig.Paths.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile, "snake")

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
		Clock:    time.Now,
	}

	scores, err := highscore.Open(highScorePath())
	if err != nil {
		logger.Warn("high score disabled", "error", err)
	} else {
		cfg.Scores = scores
	}

	store, err := storage.Open(dbPath())
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open run history", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := newPlayer(logger)
	defer player.Close()

	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	logger.Info("starting", "variant", variant, "tick_rate", tickRate, "seed", flagSeed)
	if err := tui.Run(game, cfg, tui.Deps{
		Store:         store,
		Player:        player,
		Logger:        logger,
		ScreenshotDir: tui.DefaultScreenshotDir,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playTickRate resolves --fps over --speed. Zero keeps the variant speed.
func playTickRate() (int, error) {
	if flagFPS > 0 {
		return flagFPS, nil
	}
	return config.TickRateForPreset(config.SpeedPreset(flagSpeed))
}

// applyNeckExemption overrides the rule for variant and republishes the config.
func applyNeckExemption(variant string, on bool) {
	variants := make(map[string]config.VariantConfig, len(appConfig.Variants)+1)
	for id, vc := range appConfig.Variants {
		variants[id] = vc
	}
	vc := variants[variant]
	vc.NeckExemption = &on
	variants[variant] = vc

	appConfig.Variants = variants
	snake.SetConfig(appConfig)
}

// newPlayer opens the sound device unless sound is off. Failure to open it
// is not fatal.
func newPlayer(logger *log.Logger) audio.Player {
	if flagMute || !appConfig.Audio.Enabled {
		return audio.Nop{}
	}
	p, err := audio.NewBeepPlayer(audio.VolumesFrom(appConfig.Audio))
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return audio.Nop{}
	}
	return p
}

// openLogFile opens the log for appending. The TUI owns the terminal, so
// logs cannot go to stderr while playing. An empty path discards logs.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
