package cmd

import (
	"errors"
	"fmt"

	"github.com/ObaroAwowede/Shopify-frontend/internal/application"
	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/spf13/cobra"
)

func newAddressCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Manage delivery addresses",
	}

	cmd.AddCommand(
		newAddressListCmd(app),
		newAddressCreateCmd(app),
		newAddressUpdateCmd(app),
		newAddressDeleteCmd(app),
	)

	return cmd
}

func newAddressListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addresses, err := app.addresses.List(cmd.Context())
			if err != nil {
				return errors.New(application.ErrorMessage(err))
			}

			if asJSON {
				return writeJSON(cmd, addresses)
			}

			if len(addresses) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No saved addresses.")
				return err
			}
			for _, addr := range addresses {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatAddress(addr))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAddressCreateCmd(app *app) *cobra.Command {
	var addr domain.Address

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Save a new address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := app.addresses.Create(cmd.Context(), addr)
			if err != nil {
				return errors.New(application.ErrorMessage(err))
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Address #%d saved\n", created.ID)
			return nil
		},
	}

	addAddressFlags(cmd, &addr)
	_ = cmd.MarkFlagRequired("line1")
	_ = cmd.MarkFlagRequired("city")
	_ = cmd.MarkFlagRequired("country")

	return cmd
}

func newAddressUpdateCmd(app *app) *cobra.Command {
	var addr domain.Address

	cmd := &cobra.Command{
		Use:   "update <address-id>",
		Short: "Replace a saved address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "address id")
			if err != nil {
				return err
			}
			addr.ID = id

			updated, err := app.addresses.Update(cmd.Context(), addr)
			if err != nil {
				return errors.New(application.ErrorMessage(err))
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Address #%d updated\n", updated.ID)
			return nil
		},
	}

	addAddressFlags(cmd, &addr)

	return cmd
}

func newAddressDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <address-id>",
		Short: "Delete a saved address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "address id")
			if err != nil {
				return err
			}

			if err := app.addresses.Delete(cmd.Context(), id); err != nil {
				return errors.New(application.ErrorMessage(err))
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Address #%d deleted\n", id)
			return nil
		},
	}
}

func addAddressFlags(cmd *cobra.Command, addr *domain.Address) {
	cmd.Flags().StringVar(&addr.Line1, "line1", "", "Street address")
	cmd.Flags().StringVar(&addr.Line2, "line2", "", "Apartment, suite, etc.")
	cmd.Flags().StringVar(&addr.City, "city", "", "City")
	cmd.Flags().StringVar(&addr.State, "state", "", "State or region")
	cmd.Flags().StringVar(&addr.PostalCode, "postal-code", "", "Postal code")
	cmd.Flags().StringVar(&addr.Country, "country", "", "Country")
	cmd.Flags().BoolVar(&addr.IsDefault, "default", false, "Use as the default address")
}

func formatAddress(addr domain.Address) string {
	line := fmt.Sprintf("#%d %s, %s", addr.ID, addr.Line1, addr.City)
	if addr.Line2 != "" {
		line = fmt.Sprintf("#%d %s, %s, %s", addr.ID, addr.Line1, addr.Line2, addr.City)
	}
	if addr.PostalCode != "" {
		line += " " + addr.PostalCode
	}
	line += ", " + addr.Country
	if addr.IsDefault {
		line += " (default)"
	}
	return line
}
