// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake list                 - List rule variants
//	snake play [variant]       - Play (default: deluxe)
//	snake scores <variant>     - Show the top 10 runs
//	snake board                - Browse run history interactively
//	snake reset-highscore      - Clear the high score
//	snake serve                - Start SSH server for remote play
//	snake defaults             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Override tick rate (0 = variant default)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Run history database
//	--config <path>       - Custom config YAML
//	--high-score <path>   - High score file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagHighScore string
	flagLogLevel  string

	// appConfig is loaded before any subcommand runs.
	appConfig = config.DefaultSnakeConfig()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Steer a growing snake around a walled grid, eat apples and avoid
running into the walls or yourself.

Available commands:
  list             - Show the rule variants
  play             - Play a variant
  scores           - Print the best runs of a variant
  board            - Interactive run history
  reset-highscore  - Clear the stored high score
  serve            - Start SSH server for remote play
  defaults         - Print the default configuration

Examples:
  snake play
  snake play classic
  snake play --speed fast --mute
  snake scores deluxe
  snake serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = variant default)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "high-score", "", "Path to high score file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// loadConfig reads the config file and hands it to the game package.
func loadConfig(_ *cobra.Command, _ []string) error {
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	if flagFPS < 0 {
		return fmt.Errorf("invalid --fps %d: must not be negative", flagFPS)
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	appConfig = cfg
	snake.SetConfig(appConfig)
	return nil
}

// newLogger builds the application logger at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return appConfig.Paths.Database
}

func highScorePath() string {
	if flagHighScore != "" {
		return flagHighScore
	}
	return appConfig.Paths.HighScore
}
