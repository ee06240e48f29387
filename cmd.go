package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/Rshep3087/pocketbook/config"
	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/Rshep3087/pocketbook/storage"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// app carries what every command needs once the ledger is open.
type app struct {
	cfg     config.Config
	store   *ledger.Store
	backend storage.Backend
	now     func() time.Time
	// confirm asks a yes/no question before destructive steps.
	confirm func(title string) (bool, error)

	cfgFile   string
	debug     bool
	ephemeral bool
}

// newRootCmd builds the command tree around a. Tests pass an app with the
// store already open; PersistentPreRunE leaves such a store alone.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pocketbook",
		Short: "A terminal UI and CLI for tracking income and expenses",
		Long: `pocketbook records income and expense transactions, groups them into categories,
tracks a monthly budget and shows balances, trends and cash flow.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initConfig(a, cmd.Root())
			log.SetLevel(log.InfoLevel)
			if a.debug {
				log.SetLevel(log.DebugLevel)
			}
			if cmd.Annotations[skipStoreAnnotation] == "true" {
				return nil
			}
			return a.open(cmd.Context())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.close()
		},
		RunE: func(c *cobra.Command, _ []string) error {
			// Start TUI when no subcommands are provided
			return runDashboard(c.Context(), a)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/pocketbook/pocketbook.toml)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("db", "", "path to the sqlite database")
	rootCmd.PersistentFlags().String("backend", "", "storage backend: sqlite or memory")
	rootCmd.PersistentFlags().BoolVar(&a.ephemeral, "ephemeral", false, "keep everything in memory for this run")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("storage.path", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("storage.backend", rootCmd.PersistentFlags().Lookup("backend"))

	// Bind environment variables
	_ = viper.BindEnv("storage.path", "POCKETBOOK_DB")
	_ = viper.BindEnv("storage.backend", "POCKETBOOK_BACKEND")

	rootCmd.AddCommand(
		newTransactionCmd(a),
		newCategoriesCmd(a),
		newSummaryCmd(a),
		newSeriesCmd(a),
		newBudgetCmd(a),
		newSettingsCmd(a),
		newBackupCmd(a),
		newReportCmd(a),
		newResetCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// skipStoreAnnotation marks commands that run without opening the ledger.
const skipStoreAnnotation = "pocketbook/skip-store"

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	a := &app{now: time.Now}
	if err := fang.Execute(context.Background(), newRootCmd(a)); err != nil {
		os.Exit(1)
	}
}

// initConfig reads in .env, the config file and ENV variables if set.
func initConfig(a *app, rootCmd *cobra.Command) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Debug("Error loading .env file", "error", err)
	}

	if a.cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(a.cfgFile)
	} else {
		// Search config in multiple locations (in order of precedence)
		// Current directory (highest precedence)
		viper.AddConfigPath(".")
		viper.SetConfigName(config.AppName)
		viper.SetConfigType("toml")

		// User config directory
		if configDir, configErr := os.UserConfigDir(); configErr == nil {
			viper.AddConfigPath(filepath.Join(configDir, config.AppName))
		}

		// User home directory
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(filepath.Join(home, ".config", config.AppName))
		}

		// System-wide config directory (lowest precedence)
		viper.AddConfigPath("/etc/" + config.AppName)
	}

	viper.SetEnvPrefix(config.AppName)
	viper.AutomaticEnv() // read in environment variables that match

	defaults := config.Default()
	viper.SetDefault("storage.backend", defaults.Storage.Backend)
	viper.SetDefault("storage.path", defaults.Storage.Path)

	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
	} else {
		log.Debug("Using config file", "file", viper.ConfigFileUsed())
	}

	cfg := defaults
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Warn("Ignoring malformed configuration", "error", err)
		cfg = defaults
	}
	cfg.ConfigFile = viper.ConfigFileUsed()

	if !rootCmd.PersistentFlags().Changed("debug") {
		a.debug = cfg.Debug
	}
	cfg.Debug = a.debug
	if a.ephemeral {
		cfg.Storage.Backend = storage.BackendMemory
	}
	a.cfg = cfg
}

// open validates the configuration and loads the ledger.
func (a *app) open(ctx context.Context) error {
	if a.store != nil {
		return nil
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	backend, err := storage.Open(storage.Options{
		Backend: a.cfg.Storage.Backend,
		Path:    a.cfg.Storage.Path,
	})
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	store, err := ledger.Open(ctx, backend)
	if err != nil {
		backend.Close()
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	a.backend = backend
	a.store = store
	return nil
}

func (a *app) close() error {
	if a.backend == nil {
		return nil
	}
	err := a.backend.Close()
	a.backend = nil
	return err
}

func (a *app) ask(title string) (bool, error) {
	if a.confirm != nil {
		return a.confirm(title)
	}
	return confirmPrompt(title)
}

// confirmPrompt asks a yes/no question on the terminal.
func confirmPrompt(title string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}

// currency is the display currency code from the settings.
func (a *app) currency() string {
	return a.store.Settings().Currency
}

// Utility functions for output formatting.
func validateOutputFormat(cmd *cobra.Command) (string, error) {
	outputFormat, _ := cmd.Flags().GetString("output")
	validFormats := []string{tableOutputFormat, jsonOutputFormat}
	if !slices.Contains(validFormats, outputFormat) {
		return "", fmt.Errorf("invalid output format: %s (must be one of %v)", outputFormat, validFormats)
	}
	return outputFormat, nil
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func outputJSON(cmd *cobra.Command, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
