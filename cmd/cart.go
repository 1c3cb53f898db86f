package cmd

import (
	"context"
	"errors"
	"fmt"

	cartrender "github.com/ObaroAwowede/Shopify-frontend/internal/adapters/render/cart"
	"github.com/ObaroAwowede/Shopify-frontend/internal/application"
	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/spf13/cobra"
)

func newCartCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and modify your cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCartShow(cmd, app, false)
		},
	}

	cmd.AddCommand(
		newCartShowCmd(app),
		newCartAddCmd(app),
		newCartUpdateCmd(app),
		newCartRemoveCmd(app),
		newCartClearCmd(app),
		newCartCheckoutCmd(app),
	)

	return cmd
}

func newCartShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCartShow(cmd, app, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runCartShow(cmd *cobra.Command, app *app, asJSON bool) error {
	var cart domain.Cart

	fetch := func(ctx context.Context) error {
		var err error
		cart, err = app.cart.Cart(ctx)
		return err
	}

	var err error
	if asJSON {
		err = fetch(cmd.Context())
	} else {
		err = runCartSyncSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching cart...", fetch)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return errors.New("not signed in; run `shopfront login`")
		}
		return errors.New(application.ErrorMessage(err))
	}

	if asJSON {
		return writeJSON(cmd, cart)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), cartrender.Render(cart))
	return err
}

func newCartAddCmd(app *app) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := parseID(args[0], "product id")
			if err != nil {
				return err
			}

			return runCartMutation(cmd, "Adding to cart...", func(ctx context.Context) application.Result {
				return app.cart.AddItem(ctx, productID, quantity)
			})
		},
	}

	cmd.Flags().IntVar(&quantity, "quantity", 1, "Quantity to add")

	return cmd
}

func newCartUpdateCmd(app *app) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "update <item-id>",
		Short: "Set a cart item's quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID(args[0], "item id")
			if err != nil {
				return err
			}

			// A would-be-zero update is a removal.
			if quantity < 1 {
				return runCartMutation(cmd, "Removing from cart...", func(ctx context.Context) application.Result {
					return app.cart.RemoveItem(ctx, itemID)
				})
			}

			return runCartMutation(cmd, "Updating cart...", func(ctx context.Context) application.Result {
				return app.cart.UpdateItem(ctx, itemID, quantity)
			})
		},
	}

	cmd.Flags().IntVar(&quantity, "quantity", 1, "New quantity; 0 removes the item")

	return cmd
}

func newCartRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove an item from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID(args[0], "item id")
			if err != nil {
				return err
			}

			return runCartMutation(cmd, "Removing from cart...", func(ctx context.Context) application.Result {
				return app.cart.RemoveItem(ctx, itemID)
			})
		},
	}
}

func newCartClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove everything from the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCartMutation(cmd, "Clearing cart...", func(ctx context.Context) application.Result {
				return app.cart.Clear(ctx)
			})
		},
	}
}

func newCartCheckoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Convert the cart into an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var result application.CheckoutResult

			err := runCartSyncSpinner(cmd.Context(), cmd.ErrOrStderr(), "Placing order...", func(ctx context.Context) error {
				result = app.cart.Checkout(ctx)
				return nil
			})
			if err != nil {
				return err
			}
			if !result.Success {
				return errors.New(result.Error)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Order #%d placed\n", result.OrderID)
			return nil
		},
	}
}

func runCartMutation(cmd *cobra.Command, label string, mutate func(context.Context) application.Result) error {
	var result application.Result

	err := runCartSyncSpinner(cmd.Context(), cmd.ErrOrStderr(), label, func(ctx context.Context) error {
		result = mutate(ctx)
		return nil
	})
	if err != nil {
		return err
	}
	if !result.Success {
		return errors.New(result.Error)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cart updated")
	return nil
}
