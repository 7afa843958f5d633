package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/narabid/bidassist/internal/cli/formatter"
)

func newBidsCmd(app *App) *cobra.Command {
	var keyword string

	cmd := &cobra.Command{
		Use:   "bids",
		Short: "Browse public bid announcements",
		RunE: func(cmd *cobra.Command, args []string) error {
			bids, fromCache, err := app.Bids.Browse(context.Background(), keyword)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if fromCache {
				fmt.Fprintln(out, formatter.StyleYellow.Render("Server unreachable; showing cached results."))
			}
			if len(bids) == 0 {
				fmt.Fprintln(out, formatter.Dim("No announcements found."))
				return nil
			}

			rows := make([][]string, 0, len(bids))
			for _, b := range bids {
				price := ""
				if b.EstimatePrice > 0 {
					price = strconv.FormatInt(b.EstimatePrice, 10)
				}
				rows = append(rows, []string{
					strconv.FormatInt(b.BidID, 10),
					formatter.Truncate(b.Name, 48),
					b.Organization,
					b.EndDate,
					price,
				})
			}
			fmt.Fprint(out, formatter.RenderTable(
				[]string{"ID", "NAME", "ORGANIZATION", "CLOSES", "ESTIMATE"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&keyword, "keyword", "", "Filter by name or organization")

	return cmd
}

func newNoticesCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "notices",
		Short: "Show the latest notice board posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			notices, fromCache, err := app.Notices.Latest(context.Background(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if fromCache {
				fmt.Fprintln(out, formatter.StyleYellow.Render("Server unreachable; showing cached notices."))
			}
			if len(notices) == 0 {
				fmt.Fprintln(out, formatter.Dim("Nothing on the board."))
				return nil
			}

			for _, n := range notices {
				category := ""
				if n.Category != "" {
					category = formatter.StyleBlue.Render("["+n.Category+"] ")
				}
				fmt.Fprintf(out, "%s%s\n  %s\n",
					category,
					n.Title,
					formatter.Dim(n.UserName+"  "+n.CreatedAt),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of notices")

	return cmd
}
