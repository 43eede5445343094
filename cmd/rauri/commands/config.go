package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove all package folders from the download directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Clean(cmd.Context())
		},
	}
}

func (c *CLI) newSetPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "set-path <directory>",
		Short:       "Set the directory AUR packages are downloaded to",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{skipSetup: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.SetPath(cmd.Context(), args[0])
		},
	}
}
