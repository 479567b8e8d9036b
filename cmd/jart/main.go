package main

import (
	"context"
	"os"

	_ "github.com/jimmicro/version"
	"github.com/jimyag/jart/internal/jart"
	"github.com/jimyag/jart/internal/jart/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "jart",
		Short:         "Articles and tags HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig(configPath)
			server, err := jart.New(cfg)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to create server")
			}
			if err := server.Run(context.Background()); err != nil {
				log.Fatal().Err(err).Msg("Failed to run server")
			}
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML config file (overrides JART_CONFIG)")

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig(configPath)
			if err := jart.Migrate(cfg); err != nil {
				log.Fatal().Err(err).Msg("Failed to migrate database")
			}
			log.Info().Str("driver", cfg.Database.Driver).Msg("Database migrated")
		},
	})

	return root
}

func loadConfig(path string) *config.Config {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.New()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create config")
	}
	return cfg
}
