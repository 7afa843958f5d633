package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/narabid/bidassist/internal/cli/formatter"
	"github.com/narabid/bidassist/internal/recovery"
)

// recoveryView walks the local account-recovery flow: identify the account
// by name and birth date, answer its security question, reveal the email.
// The resolver reads only the local user slot, so every transition is
// synchronous — no tea.Cmd round trips.
type recoveryView struct {
	state    *SharedState
	resolver *recovery.Resolver

	form    *huh.Form
	name    string
	birth   string
	answer  string
	errLine string
}

func newRecoveryView(state *SharedState) *recoveryView {
	v := &recoveryView{
		state:    state,
		resolver: recovery.New(state.App.Users),
	}
	v.form = v.identifyForm()
	return v
}

func (v *recoveryView) identifyForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("as registered").
				Value(&v.name),
			huh.NewInput().
				Title("Birth date").
				Placeholder("YYYY-MM-DD").
				Value(&v.birth).
				Validate(validateBirthDate),
		),
	).WithTheme(bidassistHuhTheme()).WithShowHelp(false)
}

func (v *recoveryView) answerForm() *huh.Form {
	v.answer = ""
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(v.resolver.Question()).
				Value(&v.answer),
		),
	).WithTheme(bidassistHuhTheme()).WithShowHelp(false)
}

func (v *recoveryView) ID() ViewID    { return ViewRecovery }
func (v *recoveryView) Title() string { return "Find account" }

func (v *recoveryView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *recoveryView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *recoveryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyEsc:
			// From the answer step, esc abandons the question but keeps
			// the identify inputs; from anywhere else it leaves the flow.
			if v.resolver.Step() == recovery.StepAnswer {
				v.resolver.Retry()
				v.errLine = ""
				v.form = v.identifyForm()
				return v, v.form.Init()
			}
			return v, popView()

		case v.resolver.Step() == recovery.StepResult:
			// Any key on the result screen returns to sign-in.
			return v, popView()
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		return v.advance()
	}

	return v, cmd
}

// advance feeds the completed form into the resolver and rebuilds the form
// for whichever step the resolver lands in.
func (v *recoveryView) advance() (tea.Model, tea.Cmd) {
	switch v.resolver.Step() {
	case recovery.StepIdentify:
		err := v.resolver.Identify(strings.TrimSpace(v.name), strings.TrimSpace(v.birth))
		switch {
		case errors.Is(err, recovery.ErrAccountNotFound):
			v.errLine = formatter.Err("No account matches that name and birth date.")
			v.form = v.identifyForm()
		case errors.Is(err, recovery.ErrNoRecoveryQuestion):
			v.errLine = formatter.Err("That account has no recovery question on file.")
			v.form = v.identifyForm()
		case err != nil:
			v.errLine = friendlyErr(err)
			v.form = v.identifyForm()
		default:
			v.errLine = ""
			v.form = v.answerForm()
		}
		return v, v.form.Init()

	case recovery.StepAnswer:
		err := v.resolver.VerifyAnswer(v.answer)
		switch {
		case errors.Is(err, recovery.ErrAnswerIncorrect):
			v.errLine = formatter.Err("That answer doesn't match. Try again.")
			v.form = v.answerForm()
		case errors.Is(err, recovery.ErrAccountLost):
			v.errLine = formatter.Err("The account record changed underneath you. Start over.")
			v.form = v.identifyForm()
		case errors.Is(err, recovery.ErrQuestionMismatch):
			v.errLine = formatter.Err("The account's security question changed. Start over.")
			v.form = v.identifyForm()
		case err != nil:
			v.errLine = friendlyErr(err)
			v.form = v.identifyForm()
		default:
			v.errLine = ""
			// StepResult renders without a form; keep the stale form
			// around, it is never updated again.
			return v, nil
		}
		return v, v.form.Init()
	}

	return v, nil
}

func (v *recoveryView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	if v.resolver.Step() == recovery.StepResult {
		b.WriteString("  " + formatter.OK("Account found.") + "\n\n")
		b.WriteString("  " + formatter.Dim("Your registered email is") + "\n")
		b.WriteString("  " + formatter.StyleBold.Render(v.resolver.RevealedEmail()) + "\n\n")
		b.WriteString("  " + formatter.Dim("Press any key to return to sign-in.") + "\n")
		return b.String()
	}

	if v.errLine != "" {
		b.WriteString("  " + v.errLine + "\n\n")
	}
	b.WriteString(v.form.View())
	return b.String()
}
