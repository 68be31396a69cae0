package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:       "show (customers|items|reviews) [id]",
	Short:     "Print records as JSON",
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"customers", "items", "reviews"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		id, single, err := parseShowID(args)
		if err != nil {
			return err
		}

		e, err := setup(ctx)
		if err != nil {
			return err
		}
		defer e.close(ctx)

		var out any
		switch args[0] {
		case "customers":
			out, err = showCustomers(cmd, e, id, single)
		case "items":
			out, err = showItems(cmd, e, id, single)
		case "reviews":
			out, err = showReviews(cmd, e, id, single)
		default:
			return fmt.Errorf("unknown record type %q", args[0])
		}
		if err != nil {
			return err
		}

		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func showCustomers(cmd *cobra.Command, e *env, id uint, single bool) (any, error) {
	ctx := cmd.Context()
	if single {
		customer, err := e.usecases.Customer.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return customer.ToMap(), nil
	}
	customers, err := e.usecases.Customer.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(customers))
	for _, c := range customers {
		out = append(out, c.ToMap())
	}
	return out, nil
}

func showItems(cmd *cobra.Command, e *env, id uint, single bool) (any, error) {
	ctx := cmd.Context()
	if single {
		item, err := e.usecases.Item.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return item.ToMap(), nil
	}
	items, err := e.usecases.Item.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(items))
	for _, i := range items {
		out = append(out, i.ToMap())
	}
	return out, nil
}

func showReviews(cmd *cobra.Command, e *env, id uint, single bool) (any, error) {
	ctx := cmd.Context()
	if single {
		review, err := e.usecases.Review.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return review.ToMap(), nil
	}
	reviews, err := e.usecases.Review.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, r.ToMap())
	}
	return out, nil
}

// parseShowID reports whether a single record was asked for, and which.
func parseShowID(args []string) (uint, bool, error) {
	if len(args) < 2 {
		return 0, false, nil
	}
	parsed, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid id %q", args[1])
	}
	return uint(parsed), true, nil
}
