package cli

import (
	"errors"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

// GlobalFlags are accepted by every command.
type GlobalFlags struct {
	JSON bool
}

// Run is the CLI entry point. Returns an exit code.
func Run(args []string, version string) int {
	return run(args, os.Stdout, os.Stderr, version)
}

func run(args []string, w, wErr io.Writer, version string) int {
	gf := &GlobalFlags{}
	root := buildRootCommand(w, wErr, gf, version)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return ExitOK
	}
	var exitErr exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	// Anything cobra rejects itself (unknown command or flag) is a usage error.
	if gf.JSON || slices.Contains(args, "--json") {
		ReturnError(w, "usage_error", err.Error(), nil, version)
	} else {
		Errorf(wErr, "%v", err)
	}
	return ExitUsage
}

func buildRootCommand(w, wErr io.Writer, gf *GlobalFlags, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "dragscroll",
		Short: "Kanban board with auto-scrolling drag and drop",
		Long: `dragscroll - drag cards across scrolling columns

Run without arguments to open the board.

Scroll math:
  dragscroll overlap     What part of a scroll change cannot be absorbed
  dragscroll can-scroll  Whether a container can take any of a change
  dragscroll speed       Fluid auto-scroll speed for a dragged subject`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(w)
	root.SetErr(wErr)
	root.SetHelpCommand(&cobra.Command{Hidden: true})
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVar(&gf.JSON, "json", false, "Print a JSON envelope")

	root.AddCommand(buildOverlapCommand(w, wErr, gf, version))
	root.AddCommand(buildCanScrollCommand(w, wErr, gf, version))
	root.AddCommand(buildSpeedCommand(w, wErr, gf, version))
	root.AddCommand(buildVersionCommand(w, gf, version))
	return root
}
