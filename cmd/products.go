package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	catalogrender "github.com/ObaroAwowede/Shopify-frontend/internal/adapters/render/catalog"
	"github.com/ObaroAwowede/Shopify-frontend/internal/application"
	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/spf13/cobra"
)

func newProductsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the product catalog",
	}

	cmd.AddCommand(
		newProductsListCmd(app),
		newProductsGetCmd(app),
		newProductsFeaturedCmd(app),
		newProductsReviewsCmd(app),
		newProductsCategoriesCmd(app),
	)

	return cmd
}

func newProductsListCmd(app *app) *cobra.Command {
	var filter domain.ProductFilter
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := app.products.List(cmd.Context(), filter)
			if err != nil {
				return errors.New(application.ErrorMessage(err))
			}

			if asJSON {
				return writeJSON(cmd, products)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), catalogrender.RenderProducts(products))
			return err
		},
	}

	cmd.Flags().StringVar(&filter.Search, "search", "", "Search term")
	cmd.Flags().StringVar(&filter.Category, "category", "", "Category slug")
	cmd.Flags().StringVar(&filter.MinPrice, "min-price", "", "Minimum price")
	cmd.Flags().StringVar(&filter.MaxPrice, "max-price", "", "Maximum price")
	cmd.Flags().StringVar(&filter.Ordering, "ordering", "", "Result ordering, e.g. price or -price")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newProductsGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <product-id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "product id")
			if err != nil {
				return err
			}

			product, err := app.products.Get(cmd.Context(), id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("product %d not found; try `shopfront products list`", id)
				}
				return errors.New(application.ErrorMessage(err))
			}

			if asJSON {
				return writeJSON(cmd, product)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), catalogrender.RenderProduct(product))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newProductsFeaturedCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "List featured products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := app.products.Featured(cmd.Context())
			if err != nil {
				return errors.New(application.ErrorMessage(err))
			}

			if asJSON {
				return writeJSON(cmd, products)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), catalogrender.RenderProducts(products))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newProductsReviewsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "reviews <product-id>",
		Short: "Show a product's reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "product id")
			if err != nil {
				return err
			}

			reviews, err := app.products.Reviews(cmd.Context(), id)
			if err != nil {
				return errors.New(application.ErrorMessage(err))
			}

			if asJSON {
				return writeJSON(cmd, reviews)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), catalogrender.RenderReviews(reviews))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newProductsCategoriesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories, err := app.products.Categories(cmd.Context())
			if err != nil {
				return errors.New(application.ErrorMessage(err))
			}

			if asJSON {
				return writeJSON(cmd, categories)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), catalogrender.RenderCategories(categories))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func parseID(raw, label string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", label, raw)
	}
	return id, nil
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
