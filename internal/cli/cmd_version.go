package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func buildVersionCommand(w io.Writer, gf *GlobalFlags, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if gf.JSON {
				PrintJSON(w, map[string]string{"version": version}, version)
				return nil
			}
			fmt.Fprintf(w, "dragscroll %s\n", version)
			return nil
		},
	}
}
