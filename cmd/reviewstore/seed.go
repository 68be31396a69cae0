package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/totegamma/reviewstore/internal/domain"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a sample customer, item and review",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := setup(ctx)
		if err != nil {
			return err
		}
		defer e.close(ctx)

		ana, err := e.usecases.Customer.Create(ctx, domain.Customer{Name: "Ana"})
		if err != nil {
			return err
		}
		mug, err := e.usecases.Item.Create(ctx, domain.Item{Name: "Mug", Price: 9.99})
		if err != nil {
			return err
		}
		review, err := e.usecases.Review.Create(ctx, domain.Review{
			Comment:    "Great",
			CustomerID: ana.ID,
			ItemID:     mug.ID,
		})
		if err != nil {
			return err
		}

		log.Info().
			Stringer("customer", ana).
			Stringer("item", mug).
			Stringer("review", review).
			Msg("seeded")
		return nil
	},
}
