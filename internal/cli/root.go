// Package cli assembles the hearthplan command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mistakeknot/hearthplan/internal/cli/commands"
)

func Execute() error {
	return NewRoot().Execute()
}

// NewRoot returns the root command. The root itself carries the propose
// flag surface; subcommands add the catalog and interview entry points.
func NewRoot() *cobra.Command {
	root := commands.ProposeCmd()
	root.AddCommand(
		commands.StylesCmd(),
		commands.InterviewCmd(),
	)
	return root
}
