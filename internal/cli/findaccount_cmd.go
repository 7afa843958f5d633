package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/narabid/bidassist/internal/cli/formatter"
	"github.com/narabid/bidassist/internal/recovery"
)

func newFindAccountCmd(app *App) *cobra.Command {
	var name, birthDate, answer string

	cmd := &cobra.Command{
		Use:   "find-account",
		Short: "Recover a forgotten account email from local signup records",
		Long: "Recover a forgotten account email from local signup records.\n\n" +
			"With all three flags set the flow runs non-interactively; otherwise\n" +
			"each step prompts on the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := recovery.New(app.Users)
			out := cmd.OutOrStdout()
			interactive := app.IsInteractive != nil && app.IsInteractive()

			// Identify step.
			if name == "" || birthDate == "" {
				if !interactive {
					return fmt.Errorf("--name and --birth-date are required without a terminal")
				}
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().Title("Name").Value(&name),
						huh.NewInput().Title("Birth date").Placeholder("YYYY-MM-DD").
							Value(&birthDate).Validate(validateBirthDate),
					),
				).WithTheme(bidassistHuhTheme())
				if err := form.Run(); err != nil {
					return err
				}
			}

			if err := r.Identify(name, birthDate); err != nil {
				switch {
				case errors.Is(err, recovery.ErrAccountNotFound):
					return fmt.Errorf("no account matches that name and birth date")
				case errors.Is(err, recovery.ErrNoRecoveryQuestion):
					return fmt.Errorf("that account has no recovery question on file")
				}
				return err
			}

			// Answer step, with interactive retry on a wrong answer.
			for {
				if answer == "" {
					if !interactive {
						return fmt.Errorf("--answer is required without a terminal")
					}
					form := huh.NewForm(
						huh.NewGroup(
							huh.NewInput().Title(r.Question()).Value(&answer),
						),
					).WithTheme(bidassistHuhTheme())
					if err := form.Run(); err != nil {
						return err
					}
				}

				err := r.VerifyAnswer(answer)
				if err == nil {
					break
				}
				switch {
				case errors.Is(err, recovery.ErrAnswerIncorrect):
					if !interactive {
						return fmt.Errorf("answer does not match")
					}
					fmt.Fprintln(out, formatter.Err("That answer doesn't match. Try again."))
					answer = ""
					continue
				case errors.Is(err, recovery.ErrAccountLost):
					return fmt.Errorf("the account record changed during recovery; start over")
				case errors.Is(err, recovery.ErrQuestionMismatch):
					return fmt.Errorf("the account's security question changed during recovery; start over")
				}
				return err
			}

			fmt.Fprintln(out, formatter.OK("Account found."))
			fmt.Fprintln(out, "Registered email: "+formatter.StyleBold.Render(r.RevealedEmail()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Registered name")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&answer, "answer", "", "Security question answer")

	return cmd
}
