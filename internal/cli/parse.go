package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/andyrewlee/dragscroll/internal/geom"
)

var (
	errMissingValue    = errors.New("missing value")
	errNegativeElapsed = errors.New("--elapsed must not be negative")
)

// parseNumbers splits "a,b,..." into exactly n floats.
func parseNumbers(flag, raw string, n int) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("--%s: %w", flag, errMissingValue)
	}
	parts := strings.Split(raw, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("--%s: want %d comma-separated numbers, got %q", flag, n, raw)
	}
	out := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("--%s: %q is not a number", flag, part)
		}
		out[i] = v
	}
	return out, nil
}

func parsePosition(flag, raw string) (geom.Position, error) {
	v, err := parseNumbers(flag, raw, 2)
	if err != nil {
		return geom.Position{}, err
	}
	return geom.Position{X: v[0], Y: v[1]}, nil
}

// parseRect reads "top,right,bottom,left".
func parseRect(flag, raw string) (geom.Rect, error) {
	v, err := parseNumbers(flag, raw, 4)
	if err != nil {
		return geom.Rect{}, err
	}
	r := geom.Rect{Top: v[0], Right: v[1], Bottom: v[2], Left: v[3]}
	if r.Width() < 0 || r.Height() < 0 {
		return geom.Rect{}, fmt.Errorf("--%s: right/bottom must not be less than left/top", flag)
	}
	return r, nil
}

// parseSize reads "width,height".
func parseSize(flag, raw string) (width, height float64, err error) {
	v, err := parseNumbers(flag, raw, 2)
	if err != nil {
		return 0, 0, err
	}
	if v[0] < 0 || v[1] < 0 {
		return 0, 0, fmt.Errorf("--%s: size must not be negative", flag)
	}
	return v[0], v[1], nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPosition(p geom.Position) string {
	return formatNumber(p.X) + "," + formatNumber(p.Y)
}
