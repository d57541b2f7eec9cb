package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/wheel/cmd/wheel/internal/trace"
	"github.com/go-drift/wheel/pkg/errors"
	"github.com/go-drift/wheel/pkg/rendering"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { errors.SetHandler(nil) })
	root := New()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommandsRegistered(t *testing.T) {
	root := New()
	for _, name := range []string{"render", "trace", "tui", "version"} {
		if c, _, err := root.Find([]string{name}); err != nil || c.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, c, err)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if want := "wheel version " + Version; !strings.HasPrefix(out, want) {
		t.Errorf("output = %q, want prefix %q", out, want)
	}
}

func TestRenderPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "wheel.png")
	if _, err := execute(t, "render", "--entries", "a,b,c,d", "--index", "2", "--scale", "2", "--out", out); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 229 {
		t.Errorf("bounds = %v, want 120x229", b)
	}
}

func TestRenderPickerWebP(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dialog.webp")
	if _, err := execute(t, "render", "--picker", "--out", out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) {
		t.Errorf("output does not look like WebP: % x", data[:min(len(data), 12)])
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no entries", []string{"render", "--out", filepath.Join(dir, "a.png")}, "no entries"},
		{"bad extension", []string{"render", "--entries", "a", "--out", filepath.Join(dir, "a.gif")}, "gif"},
		{"bad scale", []string{"render", "--entries", "a", "--scale", "0", "--out", filepath.Join(dir, "a.png")}, "--scale"},
		{"bad background", []string{"render", "--entries", "a", "--background", "red", "--out", filepath.Join(dir, "a.png")}, "--background"},
		{"missing out", []string{"render", "--entries", "a"}, "out"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestRenderScaled(t *testing.T) {
	img := RenderScaled(rendering.Size{Width: 10, Height: 6}, 3, func(c rendering.Canvas) {
		c.Clear(rendering.ColorWhite)
		c.DrawRect(rendering.RectFromLTWH(0, 0, 5, 6), rendering.Paint{Color: rendering.ColorBlack})
	})
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 6 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.RGBAAt(2, 3); got.R != 0 {
		t.Errorf("left pixel = %v, want black", got)
	}
	if got := img.RGBAAt(7, 3); got.R != 0xFF {
		t.Errorf("right pixel = %v, want white", got)
	}
}

func TestTraceYAML(t *testing.T) {
	script := writeFile(t, "drag.yaml", `
name: drag
entries: [a, b, c]
steps:
  - drag: -40
`)
	out, err := execute(t, "trace", "--script", script, "--output", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	var res trace.Result
	if err := yaml.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if f := res.Final(); f.Offset != 40 || f.Index != 1 || f.Item != "b" {
		t.Errorf("final frame = %+v", f)
	}
}

func TestTraceTable(t *testing.T) {
	script := writeFile(t, "drag.yaml", "entries: [a, b, c]\nsteps:\n  - drag: -80\n")
	out, err := execute(t, "trace", "--script", script)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"OFFSET", "80", "Changes"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestTraceBadOutput(t *testing.T) {
	script := writeFile(t, "drag.yaml", "steps:\n  - drag: 1\n")
	if _, err := execute(t, "trace", "--script", script, "--output", "xml"); err == nil {
		t.Fatal("expected error for unknown output format")
	}
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() { errors.SetHandler(nil) })
	path := writeFile(t, "wheel.yaml", "version: v1.0.0\nlog:\n  level: warn\n")

	tests := []struct {
		name string
		args []string
		want log.Level
	}{
		{"config level", []string{"--config", path}, log.WarnLevel},
		{"debug overrides", []string{"--config", path, "--debug"}, log.DebugLevel},
		{"defaults", nil, log.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := New()
			if err := root.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			cfg, logger, err := Setup(root)
			if err != nil {
				t.Fatal(err)
			}
			if cfg == nil || logger.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestSetupBadConfig(t *testing.T) {
	path := writeFile(t, "wheel.yaml", "version: v2.0.0\n")
	root := New()
	if err := root.ParseFlags([]string{"--config", path}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Setup(root); err == nil {
		t.Fatal("expected error for unsupported config version")
	}
}
