package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/rauri/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List installed AUR packages and available updates",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracked, _ := cmd.Flags().GetBool("tracked")
			return c.app.List(cmd.Context(), app.ListOptions{Tracked: tracked})
		},
	}
	cmd.Flags().BoolP("tracked", "t", false, "List the package names tracked by rauri")
	return cmd
}

func (c *CLI) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the AUR and the official repositories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Search(cmd.Context(), strings.Join(args, " "))
		},
	}
}
