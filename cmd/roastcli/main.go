// Command roastcli is a terminal client for the Roast My Excuses
// backend: you name a task, you name your excuse, the AI roasts you and
// hands back a plan with a timer.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mbriard/roastcli/internal/app"
	"github.com/mbriard/roastcli/internal/config"
	"github.com/mbriard/roastcli/internal/services/api"
	"github.com/mbriard/roastcli/internal/services/session"
)

var (
	flagConfig   string
	flagAPIURL   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "roastcli",
	Short: "Fais-toi griller tes excuses depuis le terminal",
	Long: `roastcli envoie ta tâche et ton excuse au serveur Roast My Excuses,
affiche le roast, puis te colle un plan d'action et un timer pour la faire
vraiment.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "config file (default: user config dir)")
	rootCmd.Flags().StringVar(&flagAPIURL, "api-url", "", "server base URL, overrides the config file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}

func run() error {
	configPath := flagConfig
	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if flagAPIURL != "" {
		cfg.API.BaseURL = flagAPIURL
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	sessionPath, err := session.DefaultPath()
	if err != nil {
		return err
	}
	store := session.NewStore(sessionPath, logger)
	creds, err := store.Load()
	if err != nil {
		logger.Warn("discarding stored session", "error", err)
	}

	client := api.NewClient(&http.Client{}, cfg.API.BaseURL, store, logger)

	model := app.New(client, store, cfg, creds, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program failed: %w", err)
	}
	return nil
}

// newLogger builds the slog logger. Without a log file everything is
// discarded: the alternate screen belongs to the TUI.
func newLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeLog := func() {}

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closeLog, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
