package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/narabid/bidassist/internal/cli/formatter"
	"github.com/narabid/bidassist/internal/domain"
)

// dashboardData holds the loaded data for the dashboard view.
type dashboardData struct {
	items     []domain.WishlistItem
	notices   []domain.Notice
	fromCache bool
}

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	data dashboardData
	err  error
}

const dashboardNoticeCount = 5

// dashboardView is the home screen of the TUI: pipeline counts per stage
// on the left, the latest notices on the right.
type dashboardView struct {
	state   *SharedState
	data    *dashboardData
	loading bool
	err     error
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state:   state,
		loading: true,
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wishlist")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "browse bids")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notices")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()

		items, err := app.Wishlist.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		notices, fromCache, err := app.Notices.Latest(ctx, dashboardNoticeCount)
		if err != nil {
			// The notice board is decorative; a failed load must not
			// take down the dashboard.
			notices = nil
		}

		return dashboardLoadedMsg{data: dashboardData{
			items:     items,
			notices:   notices,
			fromCache: fromCache,
		}}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.data = &msg.data
		v.state.Offline = msg.data.fromCache
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "w", "enter":
			return v, pushView(newWishlistView(v.state))
		case "b":
			return v, pushView(newBidBrowserView(v.state, ""))
		case "n":
			return v, pushView(newNoticesView(v.state))
		case "r":
			v.loading = true
			v.err = nil
			return v, v.loadData()
		}
	}
	return v, nil
}

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + friendlyErr(v.err)
	}
	if v.data == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString("  " + formatter.StyleHeader.Render("PIPELINE") + "\n\n")
	counts := stageCounts(v.data.items)
	for _, s := range domain.BidStages {
		bar := strings.Repeat("█", counts[s])
		b.WriteString(fmt.Sprintf("  %-16s %s %s\n",
			formatter.Stage(s),
			formatter.StyleBold.Render(fmt.Sprintf("%2d", counts[s])),
			formatter.StageStyle(s).Render(bar),
		))
	}
	b.WriteString(fmt.Sprintf("\n  %s %d saved bids\n", formatter.Dim("Total"), len(v.data.items)))

	if len(v.data.notices) > 0 {
		b.WriteString("\n  " + formatter.StyleHeader.Render("NOTICES") + "\n\n")
		for _, n := range v.data.notices {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				formatter.Dim("•"),
				formatter.Truncate(n.Title, 60),
			))
		}
	}

	return b.String()
}

func stageCounts(items []domain.WishlistItem) map[domain.BidStage]int {
	counts := make(map[domain.BidStage]int, len(domain.BidStages))
	for _, it := range items {
		counts[it.Stage]++
	}
	return counts
}
