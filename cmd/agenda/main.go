package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adso-sena/agenda/internal/config"
	"github.com/adso-sena/agenda/internal/logger"
	"github.com/adso-sena/agenda/internal/version"
)

// cliOptions holds the persistent flags and the configuration they resolve to.
type cliOptions struct {
	configPath string
	apiBaseURL string
	logLevel   string
	cfg        config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	defaultConfig := os.Getenv("CONFIG_PATH")
	if strings.TrimSpace(defaultConfig) == "" {
		defaultConfig = config.DefaultConfigPath
	}

	root := &cobra.Command{
		Use:   "agenda",
		Short: "Agenda ADSO: contactos sobre una API REST",
		Long: `Agenda ADSO administra contactos guardados en una API REST (/contactos).

Sin subcomandos abre la interfaz interactiva de terminal. Los subcomandos
permiten listar, crear, editar y eliminar contactos desde scripts, y levantar
un backend de desarrollo compatible.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfig, "Path to config.toml")
	root.PersistentFlags().StringVar(&opts.apiBaseURL, "api-url", "", "API base URL (overrides [api] base_url)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (overrides [log] level)")

	root.AddCommand(
		newListCmd(opts),
		newAddCmd(opts),
		newEditCmd(opts),
		newRemoveCmd(opts),
		newServeCmd(opts),
		newMigrateCmd(opts),
		newVersionCmd(),
	)
	return root
}

func (o *cliOptions) load() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	config.ApplyEnv(&cfg)
	if url := strings.TrimSpace(o.apiBaseURL); url != "" {
		cfg.API.BaseURL = url
	}
	if level := strings.TrimSpace(o.logLevel); level != "" {
		cfg.Log.Level = level
	}
	o.cfg = cfg
	return nil
}

// initStderrLogger is used by every non-interactive command.
func (o *cliOptions) initStderrLogger() {
	logger.Init(o.cfg.Log.Level, o.cfg.Log.Format)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
