package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/narabid/bidassist/internal/cli/formatter"
	"github.com/narabid/bidassist/internal/domain"
)

func newWishlistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage saved bids",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWishlistList(cmd, app)
		},
	}

	cmd.AddCommand(
		newWishlistListCmd(app),
		newWishlistStageCmd(app),
		newWishlistRemoveCmd(app),
		newWishlistAddCmd(app),
	)

	return cmd
}

func newWishlistListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the wishlist with pipeline stages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWishlistList(cmd, app)
		},
	}
}

func runWishlistList(cmd *cobra.Command, app *App) error {
	items, err := app.Wishlist.List(context.Background())
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No saved bids."))
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.FormatInt(it.WishlistID, 10),
			formatter.Stage(it.Stage),
			formatter.Truncate(it.Title, 48),
			it.Agency,
			it.Deadline,
		})
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
		[]string{"ID", "STAGE", "TITLE", "AGENCY", "DEADLINE"}, rows))
	return nil
}

func newWishlistStageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage ID STAGE",
		Short: "Move a saved bid to another pipeline stage",
		Long: "Move a saved bid to another pipeline stage.\n\nStages: " +
			stageNames(),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid wishlist id %q", args[0])
			}
			stage := domain.BidStage(strings.ToUpper(args[1]))
			if !stage.IsValid() {
				return fmt.Errorf("unknown stage %q (valid: %s)", args[1], stageNames())
			}

			if err := app.Wishlist.SetStage(context.Background(), id, stage); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK(fmt.Sprintf("Moved #%d to %s", id, stage.Label())))
			return nil
		},
	}
	return cmd
}

func newWishlistRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a saved bid from the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid wishlist id %q", args[0])
			}
			if err := app.Wishlist.Remove(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK(fmt.Sprintf("Removed #%d", id)))
			return nil
		},
	}
}

func newWishlistAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add BID-ID",
		Short: "Save a bid announcement to the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bidID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid bid id %q", args[0])
			}
			if err := app.Wishlist.Add(context.Background(), bidID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK(fmt.Sprintf("Saved bid %d to the wishlist", bidID)))
			return nil
		},
	}
}

func stageNames() string {
	names := make([]string, 0, len(domain.BidStages))
	for _, s := range domain.BidStages {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
