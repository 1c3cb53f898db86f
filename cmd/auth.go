package cmd

import (
	"errors"
	"fmt"

	"github.com/ObaroAwowede/Shopify-frontend/internal/application"
	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Inspect and refresh session tokens",
	}

	cmd.AddCommand(newAuthRefreshCmd(app), newAuthStatusCmd(app))

	return cmd
}

func newAuthRefreshCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the refresh token for a new access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Refresh(cmd.Context()); err != nil {
				if errors.Is(err, domain.ErrNotAuthenticated) {
					return errors.New("not signed in; run `shopfront login`")
				}
				return errors.New(application.ErrorMessage(err))
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Access token refreshed")
			return nil
		},
	}
}

func newAuthStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := app.session.State()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session: %s\n", state)

			if app.session.TokenExpired(cmd.Context()) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "access token expired; run `shopfront auth refresh`")
			}

			return nil
		},
	}
}
