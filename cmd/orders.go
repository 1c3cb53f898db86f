package cmd

import (
	"errors"
	"fmt"

	cartrender "github.com/ObaroAwowede/Shopify-frontend/internal/adapters/render/cart"
	"github.com/ObaroAwowede/Shopify-frontend/internal/application"
	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/spf13/cobra"
)

func newOrdersCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Review and cancel orders",
	}

	cmd.AddCommand(
		newOrdersListCmd(app),
		newOrdersGetCmd(app),
		newOrdersCancelCmd(app),
	)

	return cmd
}

func newOrdersListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders, err := app.orders.List(cmd.Context())
			if err != nil {
				return errors.New(application.ErrorMessage(err))
			}

			if asJSON {
				return writeJSON(cmd, orders)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cartrender.RenderOrders(orders))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newOrdersGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "order id")
			if err != nil {
				return err
			}

			order, err := app.orders.Get(cmd.Context(), id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("order %d not found; try `shopfront orders list`", id)
				}
				return errors.New(application.ErrorMessage(err))
			}

			if asJSON {
				return writeJSON(cmd, order)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cartrender.RenderOrder(order))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newOrdersCancelCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "order id")
			if err != nil {
				return err
			}

			order, err := app.orders.Cancel(cmd.Context(), id)
			if err != nil {
				return errors.New(application.ErrorMessage(err))
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Order #%d is now %s\n", order.ID, order.Status)
			return nil
		},
	}
}
