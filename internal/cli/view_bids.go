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

// bidsLoadedMsg signals that bid announcements have been loaded.
type bidsLoadedMsg struct {
	bids      []domain.Bid
	fromCache bool
	err       error
}

// bidAddedMsg reports the outcome of saving a bid to the wishlist.
type bidAddedMsg struct {
	name string
	err  error
}

// bidBrowserView lists public bid announcements and lets the user save
// one to the wishlist.
type bidBrowserView struct {
	state     *SharedState
	keyword   string
	bids      []domain.Bid
	fromCache bool
	cursor    int
	loading   bool
	err       error
}

func newBidBrowserView(state *SharedState, keyword string) *bidBrowserView {
	return &bidBrowserView{
		state:   state,
		keyword: keyword,
		loading: true,
	}
}

func (v *bidBrowserView) ID() ViewID { return ViewBidBrowser }
func (v *bidBrowserView) Title() string {
	if v.keyword != "" {
		return "Bids: " + v.keyword
	}
	return "Bids"
}

func (v *bidBrowserView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a", "enter"), key.WithHelp("a", "add to wishlist")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *bidBrowserView) Init() tea.Cmd {
	return v.loadBids()
}

func (v *bidBrowserView) loadBids() tea.Cmd {
	app := v.state.App
	keyword := v.keyword
	return func() tea.Msg {
		bids, fromCache, err := app.Bids.Browse(context.Background(), keyword)
		return bidsLoadedMsg{bids: bids, fromCache: fromCache, err: err}
	}
}

func (v *bidBrowserView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bidsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.bids = msg.bids
		v.fromCache = msg.fromCache
		v.state.Offline = msg.fromCache
		if v.cursor >= len(v.bids) {
			v.cursor = max(0, len(v.bids)-1)
		}
		return v, nil

	case bidAddedMsg:
		if msg.err != nil {
			return v, statusCmd(friendlyErr(msg.err))
		}
		return v, statusCmd(formatter.OK("Saved " + msg.name + " to the wishlist"))

	case refreshViewMsg:
		v.loading = true
		return v, v.loadBids()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.bids)-1 {
				v.cursor++
			}
		case "a", "enter":
			if v.cursor < len(v.bids) {
				return v, v.addToWishlist(v.bids[v.cursor])
			}
		case "/":
			return v, v.startSearchWizard()
		case "r":
			v.loading = true
			return v, v.loadBids()
		}
	}
	return v, nil
}

func (v *bidBrowserView) addToWishlist(bid domain.Bid) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		if err := app.Wishlist.Add(context.Background(), bid.BidID); err != nil {
			return bidAddedMsg{err: err}
		}
		return bidAddedMsg{name: bid.Name}
	}
}

func (v *bidBrowserView) startSearchWizard() tea.Cmd {
	keyword := new(string)
	*keyword = v.keyword
	form := wizardInputText("Search bids", "road, maintenance, ...", false, keyword)
	state := v.state

	return startWizardCmd(state, "Search", form, func() tea.Cmd {
		return replaceView(newBidBrowserView(state, strings.TrimSpace(*keyword)))
	})
}

func (v *bidBrowserView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading announcements...")
	}
	if v.err != nil {
		return "\n  " + friendlyErr(v.err)
	}
	if len(v.bids) == 0 {
		if v.keyword != "" {
			return "\n  " + formatter.Dim("No announcements match "+fmt.Sprintf("%q.", v.keyword))
		}
		return "\n  " + formatter.Dim("No announcements available.")
	}

	var b strings.Builder
	b.WriteString("\n")
	if v.fromCache {
		b.WriteString("  " + formatter.StyleYellow.Render("Showing cached results; server unreachable.") + "\n\n")
	}

	for i, bid := range v.bids {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		price := ""
		if bid.EstimatePrice > 0 {
			price = "  " + formatter.Dim(fmt.Sprintf("est. %d", bid.EstimatePrice))
		}

		b.WriteString(fmt.Sprintf("%s%s%s\n    %s%s\n",
			cursor,
			nameStyle.Render(formatter.Truncate(bid.Name, 64)),
			price,
			formatter.Dim(bid.Organization),
			formatter.Dim("  closes "+bid.EndDate),
		))
	}
	return b.String()
}
