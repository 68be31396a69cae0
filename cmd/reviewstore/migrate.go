package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/totegamma/reviewstore/internal/infrastructure/providers"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the customers, items and reviews tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := setup(ctx)
		if err != nil {
			return err
		}
		defer e.close(ctx)

		if err := providers.MigrateDatabase(e.db); err != nil {
			return err
		}

		log.Info().Msg("schema is up to date")
		return nil
	},
}
