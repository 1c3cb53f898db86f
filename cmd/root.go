package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Execute runs the CLI under a signal-cancelled context so an interrupt
// aborts in-flight requests instead of orphaning them.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "shopfront",
		Short:         "shopfront: browse the store, manage your cart, and place orders",
		Long:          "shopfront is the storefront client: sign in, browse products, keep a cart in sync with the server, check out, and review your orders from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		// A stored credential short-circuits straight to Authenticated.
		return app.session.Resume(cmd.Context())
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newAuthCmd(app),
		newProductsCmd(app),
		newCartCmd(app),
		newOrdersCmd(app),
		newAddressCmd(app),
	)

	return rootCmd
}
