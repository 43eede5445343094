package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rauri/internal/app"
)

func (c *CLI) newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <package>",
		Aliases: []string{"uninstall"},
		Short:   "Remove a package, its debug package and its source folder",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keepSource, _ := cmd.Flags().GetBool("keep-source")
			return c.app.Remove(cmd.Context(), args[0], app.RemoveOptions{KeepSource: keepSource})
		},
	}
	cmd.Flags().BoolP("keep-source", "k", false, "Keep the package source folder")
	return cmd
}
