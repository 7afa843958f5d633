package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/narabid/bidassist/internal/cli/formatter"
)

// loginResultMsg reports the outcome of a sign-in attempt.
type loginResultMsg struct {
	email string
	err   error
}

// loginView collects credentials and signs in against the remote store.
// Ctrl+F opens the local account-recovery flow for users who forgot
// which email they registered with.
type loginView struct {
	state    *SharedState
	form     *huh.Form
	email    string
	password string
	pending  bool
	errLine  string
}

func newLoginView(state *SharedState) *loginView {
	v := &loginView{state: state}
	v.form = v.buildForm()
	return v
}

func (v *loginView) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&v.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&v.password),
		),
	).WithTheme(bidassistHuhTheme()).WithShowHelp(false)
}

func (v *loginView) ID() ViewID    { return ViewLogin }
func (v *loginView) Title() string { return "Sign in" }

func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign in")),
		key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "find my account")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (v *loginView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		v.pending = false
		if msg.err != nil {
			v.errLine = friendlyErr(msg.err)
			v.password = ""
			v.form = v.buildForm()
			return v, v.form.Init()
		}
		v.state.Email = msg.email
		return v, replaceView(newDashboardView(v.state))

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlF {
			return v, pushView(newRecoveryView(v.state))
		}
	}

	if v.pending {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		email := strings.TrimSpace(v.email)
		password := v.password
		if email == "" || password == "" {
			v.errLine = formatter.Err("Email and password are required.")
			v.form = v.buildForm()
			return v, v.form.Init()
		}
		v.pending = true
		v.errLine = ""
		app := v.state.App
		return v, func() tea.Msg {
			if err := app.Auth.Login(context.Background(), email, password); err != nil {
				return loginResultMsg{err: err}
			}
			return loginResultMsg{email: email}
		}
	}

	return v, cmd
}

func (v *loginView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	if v.pending {
		b.WriteString("  " + formatter.Dim("Signing in...") + "\n")
		return b.String()
	}
	if v.errLine != "" {
		b.WriteString("  " + v.errLine + "\n\n")
	}
	b.WriteString(v.form.View())
	return b.String()
}
