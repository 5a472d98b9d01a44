package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sporthub/sporthub/internal/app"
	"github.com/sporthub/sporthub/internal/assistant"
	"github.com/sporthub/sporthub/internal/config"
	"github.com/sporthub/sporthub/internal/log"
	"github.com/sporthub/sporthub/internal/paths"
	"github.com/sporthub/sporthub/internal/tracing"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const (
	debugLogPath = "debug.log"
	debugEnv     = "SPORTHUB_DEBUG"
)

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "sporthub",
	Short:   "Live matches in your terminal, with an assistant one keypress away",
	Long:    `SportHub shows a board of matches and slides in an AI assistant (c) and, in debug mode, a log viewer (ctrl+x). Panels can be dismissed with Esc, a click outside or a swipe.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .sporthub/config.yaml, then ~/.config/sporthub/config.yaml)")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false,
		"write debug.log and enable the log panel (also "+debugEnv+"=1)")
	rootCmd.Flags().String("provider", "",
		`assistant provider: "openai" or "static" (offline answers)`)
	rootCmd.Flags().String("model", "", "assistant model")

	_ = viper.BindPFlag("chat.provider", rootCmd.Flags().Lookup("provider"))
	_ = viper.BindPFlag("chat.model", rootCmd.Flags().Lookup("model"))
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		cwd, _ := os.Getwd()
		home, _ := os.UserHomeDir()
		if path, ok := paths.FindConfig(cwd, home); ok {
			viper.SetConfigFile(path)
		} else if local := paths.LocalConfig(cwd); config.WriteDefaultConfig(local) == nil {
			// No config file found anywhere - start from the template.
			viper.SetConfigFile(local)
		}
	}

	// A missing file leaves the defaults in place.
	_ = viper.ReadInConfig()
	_ = viper.Unmarshal(&cfg)
}

func debugEnabled() bool {
	return debug || os.Getenv(debugEnv) != ""
}

func runApp(_ *cobra.Command, _ []string) error {
	debugMode := debugEnabled()
	if debugMode {
		cleanup, err := log.InitWithTeaLog(debugLogPath, "sporthub", cfg.Logs.BufferSize)
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer cleanup()
		log.Info(log.CatConfig, "Starting", "version", version, "config", viper.ConfigFileUsed())
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := app.ApplyTheme(cfg.Theme); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	tp, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
		}
	}()

	newProvider := func(c config.ChatConfig) (assistant.Provider, error) {
		p, err := assistant.NewProvider(c)
		if err != nil {
			return nil, err
		}
		return assistant.Traced(p, tp.Tracer()), nil
	}

	provider, err := newProvider(cfg.Chat)
	switch {
	case errors.Is(err, assistant.ErrNoAPIKey):
		// The chat panel asks for a key.
		provider = nil
	case err != nil:
		return fmt.Errorf("setting up assistant: %w", err)
	}

	model := app.New(app.Options{
		Config:      cfg,
		ConfigPath:  viper.ConfigFileUsed(),
		Debug:       debugMode,
		Provider:    provider,
		NewProvider: newProvider,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		model = fm
	}

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
