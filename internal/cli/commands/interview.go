package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mistakeknot/hearthplan/internal/tui"
)

var runWizard = func() error {
	m := tui.NewModel()
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}

// InterviewCmd launches the interactive brief wizard.
func InterviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interview",
		Short: "Build a design brief interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runWizard(); err != nil {
				return wrapCommandError("interview", err)
			}
			return nil
		},
	}
}
