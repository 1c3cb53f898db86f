package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ObaroAwowede/Shopify-frontend/internal/application"
	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.session.CurrentUser(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrNotAuthenticated) {
					return errors.New("not signed in; run `shopfront login`")
				}
				return errors.New(application.ErrorMessage(err))
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(user)
			}

			name := user.Username
			if user.FirstName != "" {
				name = fmt.Sprintf("%s %s (%s)", user.FirstName, user.LastName, user.Username)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			if user.Email != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), user.Email)
			}

			if expiry, ok := app.session.TokenExpiry(cmd.Context()); ok {
				label := "expires"
				if !expiry.After(app.now()) {
					label = "expired"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "token %s %s\n", label, expiry.Format(time.RFC1123))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
