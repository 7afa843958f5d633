package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/narabid/bidassist/internal/cli/formatter"
	"github.com/narabid/bidassist/internal/domain"
)

const noticesPageSize = 20

// noticesLoadedMsg signals that notices have been loaded.
type noticesLoadedMsg struct {
	notices   []domain.Notice
	fromCache bool
	err       error
}

// noticesView shows the community notice board in a scrollable viewport.
type noticesView struct {
	state     *SharedState
	vp        viewport.Model
	notices   []domain.Notice
	fromCache bool
	loading   bool
	err       error
}

func newNoticesView(state *SharedState) *noticesView {
	vp := viewport.New(state.Width, state.ContentHeight())
	return &noticesView{
		state:   state,
		vp:      vp,
		loading: true,
	}
}

func (v *noticesView) ID() ViewID    { return ViewNotices }
func (v *noticesView) Title() string { return "Notices" }

func (v *noticesView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *noticesView) Init() tea.Cmd {
	return v.loadNotices()
}

func (v *noticesView) loadNotices() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		notices, fromCache, err := app.Notices.Latest(context.Background(), noticesPageSize)
		return noticesLoadedMsg{notices: notices, fromCache: fromCache, err: err}
	}
}

func (v *noticesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticesLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.notices = msg.notices
		v.fromCache = msg.fromCache
		v.state.Offline = msg.fromCache
		v.vp.SetContent(v.renderNotices())
		v.vp.GotoTop()
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadNotices()

	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			v.loading = true
			return v, v.loadNotices()
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *noticesView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading notices...")
	}
	if v.err != nil {
		return "\n  " + friendlyErr(v.err)
	}
	if len(v.notices) == 0 {
		return "\n  " + formatter.Dim("Nothing on the board.")
	}
	if v.state.Height > 0 {
		return v.vp.View()
	}
	return v.renderNotices()
}

func (v *noticesView) renderNotices() string {
	var b strings.Builder
	b.WriteString("\n")
	if v.fromCache {
		b.WriteString("  " + formatter.StyleYellow.Render("Showing cached notices; server unreachable.") + "\n\n")
	}

	for _, n := range v.notices {
		category := ""
		if n.Category != "" {
			category = formatter.StyleBlue.Render("["+n.Category+"] ")
		}
		b.WriteString(fmt.Sprintf("  %s%s\n    %s\n",
			category,
			formatter.StyleFg.Render(formatter.Truncate(n.Title, 64)),
			formatter.Dim(n.UserName+"  "+n.CreatedAt),
		))
	}
	return b.String()
}
