package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/narabid/bidassist/internal/cli/formatter"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the remote store",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Prompt for anything not given as a flag when on a terminal.
			if (email == "" || password == "") && app.IsInteractive != nil && app.IsInteractive() {
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().Title("Email").Value(&email),
						huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
					),
				).WithTheme(bidassistHuhTheme())
				if err := form.Run(); err != nil {
					return err
				}
			}
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			if err := app.Auth.Login(context.Background(), email, password); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK("Signed in as "+email))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Signed out."))
			return nil
		},
	}
}
