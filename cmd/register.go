package cmd

import (
	"errors"
	"fmt"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/spf13/cobra"
)

func newRegisterCmd(app *app) *cobra.Command {
	var reg domain.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := app.session.Register(cmd.Context(), reg)
			if !result.Success {
				return errors.New(result.Error)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Account %s created. Run `shopfront login` to sign in.\n", reg.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.Username, "username", "", "Account username")
	cmd.Flags().StringVar(&reg.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&reg.Password, "password", "", "Account password")
	cmd.Flags().StringVar(&reg.PasswordConfirm, "password-confirm", "", "Password confirmation")
	cmd.Flags().StringVar(&reg.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&reg.LastName, "last-name", "", "Last name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("password-confirm")

	return cmd
}
