package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/narabid/bidassist/internal/recovery"
	"github.com/narabid/bidassist/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Auth     service.AuthService
	Wishlist service.WishlistService
	Bids     service.BidService
	Notices  service.NoticeService

	// Users backs the local account-recovery flow.
	Users recovery.Store

	// IsInteractive reports whether stdin is a terminal; the bare root
	// command launches the TUI only when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "bidassist" command and registers all
// subcommands against the provided App. Running it with no subcommand
// starts the interactive TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "bidassist",
		Short:        "Track procurement bids through your pipeline",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWishlistCmd(app),
		newBidsCmd(app),
		newNoticesCmd(app),
		newFindAccountCmd(app),
	)

	return root
}
