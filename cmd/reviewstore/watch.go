package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/totegamma/reviewstore/internal/domain"
	"github.com/totegamma/reviewstore/internal/infrastructure/database"
	"github.com/totegamma/reviewstore/internal/service"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print change events as they are published",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}
		if conf.Server.RedisAddr == "" {
			return errors.New("watch needs server.redisAddr")
		}

		rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
		defer rdb.Close()

		out := cmd.OutOrStdout()
		err = service.NewSignalService(rdb).Subscribe(cmd.Context(), func(e domain.Event) {
			fmt.Fprintf(out, "%s %d\n", e.Type, e.ID)
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}
