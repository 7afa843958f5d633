package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/narabid/bidassist/internal/cli/formatter"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack, a breadcrumb header, and a key-hint bar.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient status line from the last action, shown above the hints.
	lastStatus string
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:   app,
		Email: app.Auth.Email(),
	}

	m := appModel{state: state}

	// Unauthenticated sessions land on the login view; otherwise the
	// dashboard is home.
	if app.Auth.Authenticated() {
		m.viewStack = []View{newDashboardView(state)}
	} else {
		m.viewStack = []View{newLoginView(state)}
	}

	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// Navigation messages from views
	case pushViewMsg:
		m.lastStatus = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		m.lastStatus = ""
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast to ALL views in the stack so underlying views (e.g. the
		// wishlist) reload data after mutations made in views above them.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case statusMsg:
		m.lastStatus = msg.text
		return m, nil

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, tea.Batch(msg.nextCmd, refreshCmd())
	}

	// Forward other messages to the active view (loaded-data messages,
	// cursor blink, etc).
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// A new keypress dismisses the previous action's status line.
	m.lastStatus = ""

	// Views with their own text input (login, wizards, recovery) receive
	// all key events, bypassing global shortcuts like q and esc-to-back.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		// Pop view stack (go back)
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("bidassist")

	// Breadcrumb from view stack
	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb

	// Right-hand account badge
	if m.state.Email != "" {
		header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render(m.state.Email) + formatter.Dim("]")
	}
	if m.state.Offline {
		header += "  " + formatter.StyleYellow.Render("offline")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}

	bar := strings.Join(hints, "  ")
	if m.lastStatus != "" {
		bar = m.lastStatus + "\n" + bar
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// viewCapturesInput returns true if the active view has its own text input
// and should receive all key events (bypassing global keybindings like q/Esc).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	switch v.ID() {
	case ViewLogin, ViewRecovery, ViewForm:
		return true
	}
	return false
}
