package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/andyrewlee/dragscroll/internal/autoscroll"
	"github.com/andyrewlee/dragscroll/internal/config"
	"github.com/andyrewlee/dragscroll/internal/geom"
)

type speedResult struct {
	Speed    *point  `json:"speed"`
	MaxSpeed float64 `json:"max_speed"`
	Dampened bool    `json:"dampened"`
}

// loadTuning is replaced in tests.
var loadTuning = func() (autoscroll.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return autoscroll.Config{}, err
	}
	return cfg.AutoScroll, nil
}

func buildSpeedCommand(w, wErr io.Writer, gf *GlobalFlags, version string) *cobra.Command {
	const usage = "Usage: dragscroll speed --container t,r,b,l --center x,y [--subject w,h] [--elapsed d] [--json]"
	var (
		container string
		center    string
		subject   string
		elapsed   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "speed",
		Short: "Print the fluid auto-scroll speed for a dragged subject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := parseRect("container", container)
			if err != nil {
				return returnUsageError(w, wErr, gf, usage, version, err)
			}
			c, err := parsePosition("center", center)
			if err != nil {
				return returnUsageError(w, wErr, gf, usage, version, err)
			}
			width, height, err := parseSize("subject", subject)
			if err != nil {
				return returnUsageError(w, wErr, gf, usage, version, err)
			}
			if elapsed < 0 {
				return returnUsageError(w, wErr, gf, usage, version, errNegativeElapsed)
			}

			tuning, err := loadTuning()
			if err != nil {
				return returnInternalError(w, wErr, gf, "config_error", err, version)
			}

			box := geom.FromSize(c.X-width/2, c.Y-height/2, width, height)
			damp := autoscroll.Dampening{Enabled: cmd.Flags().Changed("elapsed"), RunTime: elapsed}
			result := speedResult{MaxSpeed: tuning.MaxSpeed, Dampened: damp.Enabled}
			if speed, ok := tuning.Speed(frame, box, c, damp); ok {
				p := toPoint(speed)
				result.Speed = &p
			}

			if gf.JSON {
				PrintJSON(w, result, version)
				return nil
			}
			out := newPrinter(w)
			if result.Speed == nil {
				out.field("speed", "none")
			} else {
				out.field("speed", formatPosition(geom.Position{X: result.Speed.X, Y: result.Speed.Y}))
			}
			if damp.Enabled {
				out.note("dampened for a drag running " + elapsed.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&container, "container", "", "Container frame top,right,bottom,left")
	cmd.Flags().StringVar(&center, "center", "", "Center of the dragged subject x,y")
	cmd.Flags().StringVar(&subject, "subject", "0,0", "Size of the dragged subject w,h")
	cmd.Flags().DurationVar(&elapsed, "elapsed", 0, "Apply time dampening for a drag running this long")
	return cmd
}
