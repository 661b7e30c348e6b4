package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-gridfield/pkg/declaration"
	"github.com/goliatone/go-gridfield/pkg/fieldtype"
	"github.com/goliatone/go-gridfield/pkg/tabular"
)

// cli holds state shared by the subcommands once PersistentPreRunE ran.
type cli struct {
	configFile string
	cfg        *viper.Viper
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:           "gridfield",
		Short:         "Tabular content fields for template driven sites",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadDotEnv(); err != nil {
				return err
			}
			cfg, err := loadConfig(c.configFile)
			if err != nil {
				return err
			}
			for _, key := range []string{cfgKeyAddr, cfgKeyDB, cfgKeyTemplates, cfgKeyAssetPath, cfgKeyLogLevel, cfgKeySanitize} {
				if flag := cmd.Flags().Lookup(strings.ReplaceAll(key, "_", "-")); flag != nil {
					if err := cfg.BindPFlag(key, flag); err != nil {
						return fmt.Errorf("bind flag %s: %w", key, err)
					}
				}
			}
			level, err := parseLevel(cfg.GetString(cfgKeyLogLevel))
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default: ./gridfield.yaml)")
	rootCmd.PersistentFlags().String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("asset-path", "", "URL prefix the tabular stylesheet is served from")
	rootCmd.PersistentFlags().Bool("sanitize", true, "strip all but inline formatting from public cell output")

	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newGridCmd())
	rootCmd.AddCommand(c.newParseCmd())
	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newEditCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func (c *cli) field() *tabular.Field {
	options := []tabular.Option{
		tabular.WithLogger(c.logger),
		tabular.WithAssetPath(c.cfg.GetString(cfgKeyAssetPath)),
	}
	if c.cfg.GetBool(cfgKeySanitize) {
		options = append(options, tabular.WithSanitizer(tabular.DefaultSanitizer()))
	}
	return tabular.New(options...)
}

func (c *cli) registry(field *tabular.Field) *fieldtype.Registry {
	registry := fieldtype.NewRegistry()
	registry.MustRegister(field)
	return registry
}

// declarations loads the configured declaration directory, falling back to
// the bundled samples.
func (c *cli) declarations() (*declaration.Store, error) {
	var fsys fs.FS = declaration.DefaultsFS()
	if dir := strings.TrimSpace(c.cfg.GetString(cfgKeyTemplates)); dir != "" {
		fsys = os.DirFS(dir)
	}
	store, err := declaration.LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	return store, nil
}
