package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/andyrewlee/dragscroll/internal/autoscroll"
	"github.com/andyrewlee/dragscroll/internal/geom"
)

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func toPoint(p geom.Position) point {
	return point{X: p.X, Y: p.Y}
}

type overlapResult struct {
	Overlap *point `json:"overlap"`
}

type canScrollResult struct {
	CanScroll bool `json:"can_scroll"`
}

// scrollFlags are shared by overlap and can-scroll.
type scrollFlags struct {
	current string
	max     string
	change  string
}

func (f *scrollFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.current, "current", "0,0", "Current scroll offset x,y")
	cmd.Flags().StringVar(&f.max, "max", "", "Maximum scroll offset x,y")
	cmd.Flags().StringVar(&f.change, "change", "", "Requested change x,y")
}

func (f *scrollFlags) parse() (autoscroll.ScrollState, geom.Position, error) {
	current, err := parsePosition("current", f.current)
	if err != nil {
		return autoscroll.ScrollState{}, geom.Position{}, err
	}
	maxScroll, err := parsePosition("max", f.max)
	if err != nil {
		return autoscroll.ScrollState{}, geom.Position{}, err
	}
	change, err := parsePosition("change", f.change)
	if err != nil {
		return autoscroll.ScrollState{}, geom.Position{}, err
	}
	return autoscroll.ScrollState{Current: current, Max: maxScroll}, change, nil
}

func buildOverlapCommand(w, wErr io.Writer, gf *GlobalFlags, version string) *cobra.Command {
	const usage = "Usage: dragscroll overlap --current x,y --max x,y --change x,y [--json]"
	var flags scrollFlags
	cmd := &cobra.Command{
		Use:   "overlap",
		Short: "Print the part of a scroll change that overflows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, change, err := flags.parse()
			if err != nil {
				return returnUsageError(w, wErr, gf, usage, version, err)
			}
			var result overlapResult
			if overlap, ok := autoscroll.Overlap(state, change); ok {
				p := toPoint(overlap)
				result.Overlap = &p
			}
			if gf.JSON {
				PrintJSON(w, result, version)
				return nil
			}
			out := newPrinter(w)
			if result.Overlap == nil {
				out.field("overlap", "none")
				return nil
			}
			out.field("overlap", formatPosition(geom.Position{X: result.Overlap.X, Y: result.Overlap.Y}))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func buildCanScrollCommand(w, wErr io.Writer, gf *GlobalFlags, version string) *cobra.Command {
	const usage = "Usage: dragscroll can-scroll --current x,y --max x,y --change x,y [--json]"
	var flags scrollFlags
	cmd := &cobra.Command{
		Use:   "can-scroll",
		Short: "Report whether any of a scroll change can be applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, change, err := flags.parse()
			if err != nil {
				return returnUsageError(w, wErr, gf, usage, version, err)
			}
			result := canScrollResult{CanScroll: autoscroll.CanPartiallyScroll(state, change)}
			if gf.JSON {
				PrintJSON(w, result, version)
				return nil
			}
			value := "false"
			if result.CanScroll {
				value = "true"
			}
			newPrinter(w).field("can scroll", value)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
