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

// wishlistLoadedMsg signals that the wishlist mirror has been refreshed.
type wishlistLoadedMsg struct {
	items []domain.WishlistItem
	err   error
}

// wishlistMutatedMsg reports the outcome of a stage change or removal.
type wishlistMutatedMsg struct {
	note string
	err  error
}

// wishlistView is the stage tracker: the user's saved bids with their
// pipeline stage, mutable in place.
type wishlistView struct {
	state   *SharedState
	items   []domain.WishlistItem
	cursor  int
	loading bool
	err     error
}

func newWishlistView(state *SharedState) *wishlistView {
	return &wishlistView{
		state:   state,
		loading: true,
	}
}

func (v *wishlistView) ID() ViewID    { return ViewWishlist }
func (v *wishlistView) Title() string { return "Wishlist" }

func (v *wishlistView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "change stage")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *wishlistView) Init() tea.Cmd {
	return v.loadItems()
}

func (v *wishlistView) loadItems() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		items, err := app.Wishlist.List(context.Background())
		return wishlistLoadedMsg{items: items, err: err}
	}
}

func (v *wishlistView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case wishlistLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.items = msg.items
		if v.cursor >= len(v.items) {
			v.cursor = max(0, len(v.items)-1)
		}
		return v, nil

	case wishlistMutatedMsg:
		if msg.err != nil {
			return v, statusCmd(friendlyErr(msg.err))
		}
		// Refresh the local copy from the service mirror; the mutation
		// already updated it, no second remote round trip needed.
		v.items = v.state.App.Wishlist.Items()
		if v.cursor >= len(v.items) {
			v.cursor = max(0, len(v.items)-1)
		}
		return v, statusCmd(formatter.OK(msg.note))

	case refreshViewMsg:
		v.loading = true
		return v, v.loadItems()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.items)-1 {
				v.cursor++
			}
		case "s", "enter":
			if v.cursor < len(v.items) {
				return v, v.startStageWizard(v.items[v.cursor])
			}
		case "x":
			if v.cursor < len(v.items) {
				return v, v.startRemoveWizard(v.items[v.cursor])
			}
		case "r":
			v.loading = true
			return v, v.loadItems()
		}
	}
	return v, nil
}

// startStageWizard pushes a stage-select form for the item under the cursor.
func (v *wishlistView) startStageWizard(item domain.WishlistItem) tea.Cmd {
	if v.state.App.Wishlist.ItemBusy(item.WishlistID) {
		return statusCmd(formatter.Dim("A change for this bid is still in flight."))
	}

	picked := new(string)
	form := wizardSelectStage(item.Stage, picked)
	app := v.state.App

	return startWizardCmd(v.state, "Stage", form, func() tea.Cmd {
		stage := domain.BidStage(*picked)
		if stage == item.Stage {
			return nil
		}
		return func() tea.Msg {
			if err := app.Wishlist.SetStage(context.Background(), item.WishlistID, stage); err != nil {
				return wishlistMutatedMsg{err: err}
			}
			return wishlistMutatedMsg{note: fmt.Sprintf("%s → %s", item.Title, stage.Label())}
		}
	})
}

// startRemoveWizard pushes a confirm form, then deletes on Yes.
func (v *wishlistView) startRemoveWizard(item domain.WishlistItem) tea.Cmd {
	if v.state.App.Wishlist.ItemBusy(item.WishlistID) {
		return statusCmd(formatter.Dim("A change for this bid is still in flight."))
	}

	confirmed := new(bool)
	form := wizardConfirm(fmt.Sprintf("Remove %q from the wishlist?", item.Title), confirmed)
	app := v.state.App

	return startWizardCmd(v.state, "Remove", form, func() tea.Cmd {
		if !*confirmed {
			return nil
		}
		return func() tea.Msg {
			if err := app.Wishlist.Remove(context.Background(), item.WishlistID); err != nil {
				return wishlistMutatedMsg{err: err}
			}
			return wishlistMutatedMsg{note: fmt.Sprintf("Removed %s", item.Title)}
		}
	})
}

func (v *wishlistView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading wishlist...")
	}
	if v.err != nil {
		return "\n  " + friendlyErr(v.err)
	}
	if len(v.items) == 0 {
		return "\n  " + formatter.Dim("No saved bids. Press 'esc' then 'b' to browse announcements.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, item := range v.items {
		b.WriteString(v.renderRow(item, i == v.cursor))
		b.WriteByte('\n')
	}
	return b.String()
}

func (v *wishlistView) renderRow(item domain.WishlistItem, isCursor bool) string {
	cursor := "  "
	titleStyle := formatter.StyleFg
	if isCursor {
		cursor = formatter.StyleGreen.Render("▸ ")
		titleStyle = formatter.StyleBold
	}

	busy := ""
	if v.state.App.Wishlist.ItemBusy(item.WishlistID) {
		busy = " " + formatter.StyleYellow.Render("…")
	}

	deadline := ""
	if item.Deadline != "" {
		deadline = "  " + formatter.Dim("due "+item.Deadline)
	}

	return fmt.Sprintf("%s%-16s %s%s%s\n    %s%s",
		cursor,
		formatter.Stage(item.Stage),
		titleStyle.Render(formatter.Truncate(item.Title, 56)),
		busy,
		deadline,
		formatter.Dim(item.Agency),
		formatter.Dim("  "+item.Budget),
	)
}
