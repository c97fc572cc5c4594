package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/andyrewlee/dragscroll/internal/autoscroll"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut, "test-v1")
	return code, out.String(), errOut.String()
}

func decodeEnvelope(t *testing.T, raw string) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		t.Fatalf("failed to decode envelope: %v\n%s", err, raw)
	}
	if env.SchemaVersion != EnvelopeSchemaVersion {
		t.Fatalf("schema_version = %q", env.SchemaVersion)
	}
	return env
}

func withDefaultTuning(t *testing.T) {
	t.Helper()
	prev := loadTuning
	loadTuning = func() (autoscroll.Config, error) { return autoscroll.DefaultConfig(), nil }
	t.Cleanup(func() { loadTuning = prev })
}

func TestOverlapHuman(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "fits",
			args: []string{"overlap", "--current", "0,0", "--max", "10,10", "--change", "5,5"},
			want: "none",
		},
		{
			name: "overflows both axes",
			args: []string{"overlap", "--current", "8,0", "--max", "10,10", "--change", "5,-3"},
			want: "3,-3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.args...)
			if code != ExitOK {
				t.Fatalf("code = %d, stderr = %q", code, errOut)
			}
			if !strings.Contains(out, tt.want) {
				t.Fatalf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestOverlapJSON(t *testing.T) {
	code, out, _ := runCLI(t, "--json", "overlap", "--current", "8,0", "--max", "10,10", "--change", "5,-3")
	if code != ExitOK {
		t.Fatalf("code = %d", code)
	}
	env := decodeEnvelope(t, out)
	if !env.OK {
		t.Fatalf("expected ok=true, got error=%#v", env.Error)
	}
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected map payload, got %T", env.Data)
	}
	overlap, ok := data["overlap"].(map[string]any)
	if !ok {
		t.Fatalf("expected overlap object, got %#v", data["overlap"])
	}
	if overlap["x"] != 3.0 || overlap["y"] != -3.0 {
		t.Fatalf("overlap = %#v", overlap)
	}
}

func TestCanScroll(t *testing.T) {
	tests := []struct {
		name   string
		change string
		want   bool
	}{
		{name: "at max moving forward", change: "5,0", want: false},
		{name: "at max moving back", change: "-5,0", want: true},
		{name: "other axis free", change: "0,4", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := runCLI(t, "can-scroll", "--json", "--current", "10,0", "--max", "10,10", "--change", tt.change)
			if code != ExitOK {
				t.Fatalf("code = %d", code)
			}
			env := decodeEnvelope(t, out)
			data := env.Data.(map[string]any)
			if got := data["can_scroll"]; got != tt.want {
				t.Fatalf("can_scroll = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpeed(t *testing.T) {
	withDefaultTuning(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "near bottom edge", args: []string{"--center", "50,98"}, want: "0,3"},
		{name: "middle", args: []string{"--center", "50,50"}, want: "none"},
		{name: "dampened near left edge", args: []string{"--center", "2,50", "--elapsed", "100ms"}, want: "-1,0"},
		{name: "subject wider than container", args: []string{"--center", "2,50", "--subject", "120,2"}, want: "none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"speed", "--container", "0,100,100,0"}, tt.args...)
			code, out, errOut := runCLI(t, args...)
			if code != ExitOK {
				t.Fatalf("code = %d, stderr = %q", code, errOut)
			}
			if !strings.Contains(out, "speed: "+tt.want) {
				t.Fatalf("output = %q, want speed %q", out, tt.want)
			}
		})
	}
}

func TestSpeedConfigError(t *testing.T) {
	prev := loadTuning
	loadTuning = func() (autoscroll.Config, error) { return autoscroll.Config{}, errors.New("broken config") }
	t.Cleanup(func() { loadTuning = prev })

	code, out, _ := runCLI(t, "speed", "--json", "--container", "0,10,10,0", "--center", "5,5")
	if code != ExitInternalError {
		t.Fatalf("code = %d, want %d", code, ExitInternalError)
	}
	env := decodeEnvelope(t, out)
	if env.OK || env.Error == nil || env.Error.Code != "config_error" {
		t.Fatalf("envelope = %#v", env)
	}
}

func TestUsageErrors(t *testing.T) {
	withDefaultTuning(t)
	tests := []struct {
		name     string
		args     []string
		wantJSON bool
	}{
		{name: "missing max", args: []string{"overlap", "--change", "1,1"}},
		{name: "bad number", args: []string{"can-scroll", "--max", "1,x", "--change", "1,1"}},
		{name: "inverted container", args: []string{"speed", "--container", "0,0,10,10", "--center", "1,1"}},
		{name: "unknown flag", args: []string{"overlap", "--nope"}},
		{name: "unknown command", args: []string{"fly"}},
		{name: "json missing change", args: []string{"overlap", "--json", "--max", "1,1"}, wantJSON: true},
		{name: "json unknown flag", args: []string{"--json", "speed", "--bogus"}, wantJSON: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.args...)
			if code != ExitUsage {
				t.Fatalf("code = %d, want %d", code, ExitUsage)
			}
			if !tt.wantJSON {
				if !strings.Contains(errOut, "Error:") {
					t.Fatalf("stderr = %q, want an error line", errOut)
				}
				return
			}
			env := decodeEnvelope(t, out)
			if env.OK || env.Error == nil || env.Error.Code != "usage_error" {
				t.Fatalf("envelope = %#v", env)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	if code != ExitOK || strings.TrimSpace(out) != "dragscroll test-v1" {
		t.Fatalf("version = %d %q", code, out)
	}
}

func TestParseHelpers(t *testing.T) {
	if _, err := parsePosition("center", ""); !errors.Is(err, errMissingValue) {
		t.Fatalf("empty position error = %v", err)
	}
	r, err := parseRect("container", " 1, 9 ,5,2")
	if err != nil {
		t.Fatalf("parseRect() error = %v", err)
	}
	if r.Top != 1 || r.Right != 9 || r.Bottom != 5 || r.Left != 2 {
		t.Fatalf("rect = %+v", r)
	}
	if _, _, err := parseSize("subject", "-1,2"); err == nil {
		t.Fatal("expected negative size error")
	}
	if got := formatNumber(2.5); got != "2.5" {
		t.Fatalf("formatNumber = %q", got)
	}
}
