package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/elements/pkg/graphics"
)

func TestGetReturnsDefaultOnFirstUse(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	got := Get()
	if got == nil {
		t.Fatal("Get() returned nil")
	}
	if got.LabelFontSize != Default().LabelFontSize {
		t.Errorf("LabelFontSize = %v, want %v", got.LabelFontSize, Default().LabelFontSize)
	}
	if Get() != got {
		t.Error("Get() should return the same instance until Set is called")
	}
}

func TestSetReplacesGlobalTheme(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	custom := Default()
	custom.LabelFontSize = 22
	Set(custom)

	if got := Get().LabelFontSize; got != 22 {
		t.Errorf("LabelFontSize = %v, want 22", got)
	}

	custom.LabelFontSize = 30
	if got := Get().LabelFontSize; got != 22 {
		t.Errorf("Set should copy the theme; got %v after mutating the argument", got)
	}

	Set(nil)
	if got := Get().LabelFontSize; got != Default().LabelFontSize {
		t.Errorf("Set(nil) should restore defaults, got LabelFontSize %v", got)
	}
}

func TestDefaultDerivedIndicatorColors(t *testing.T) {
	d := Default()
	if d.IndicatorBrightColor != d.IndicatorColor.Level(1.5) {
		t.Errorf("IndicatorBrightColor = %v, want %v", d.IndicatorBrightColor, d.IndicatorColor.Level(1.5))
	}
	if d.IndicatorBrightColor.Alpha() != d.IndicatorColor.Alpha() {
		t.Error("Level should keep alpha")
	}
}

func TestDecodeYAMLOverlaysDefaults(t *testing.T) {
	data := []byte(`
label_font_size: 18
label_font_color: "#ff000080"
dial_mode: radial
button_margin:
  left: 4
`)
	got, err := Decode(data, FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.LabelFontSize != 18 {
		t.Errorf("LabelFontSize = %v, want 18", got.LabelFontSize)
	}
	if want := graphics.RGBA8(255, 0, 0, 0x80); got.LabelFontColor != want {
		t.Errorf("LabelFontColor = %v, want %v", got.LabelFontColor, want)
	}
	if got.DialMode != DialRadial {
		t.Errorf("DialMode = %v, want radial", got.DialMode)
	}
	if got.ButtonMargin.Left != 4 {
		t.Errorf("ButtonMargin.Left = %v, want 4", got.ButtonMargin.Left)
	}
	if got.HeadingFontSize != Default().HeadingFontSize {
		t.Errorf("unspecified keys should keep defaults, HeadingFontSize = %v", got.HeadingFontSize)
	}
}

func TestDecodeTOML(t *testing.T) {
	data := []byte(`
label_font = "Inter"
panel_color = "#101010"
dial_linear_range = 120.0
`)
	got, err := Decode(data, FormatTOML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.LabelFont != "Inter" {
		t.Errorf("LabelFont = %q, want Inter", got.LabelFont)
	}
	if want := graphics.RGB(16, 16, 16); got.PanelColor != want {
		t.Errorf("PanelColor = %v, want %v", got.PanelColor, want)
	}
	if got.DialLinearRange != 120 {
		t.Errorf("DialLinearRange = %v, want 120", got.DialLinearRange)
	}
}

func TestDecodeRejectsBadValues(t *testing.T) {
	tests := map[string]struct {
		data   string
		format Format
	}{
		"bad color":     {data: "frame_color: \"#12\"", format: FormatYAML},
		"bad dial mode": {data: "dial_mode: spiral", format: FormatYAML},
		"bad toml":      {data: "label_font = ", format: FormatTOML},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.data), tt.format); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadPicksFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dark.yml")
	if err := os.WriteFile(path, []byte("label_font_size: 11\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.LabelFontSize != 11 {
		t.Errorf("LabelFontSize = %v, want 11", got.LabelFontSize)
	}

	if _, err := Load(filepath.Join(dir, "theme.json")); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("Load(.json) error = %v, want unsupported format", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestEncodeYAMLUsesHexColors(t *testing.T) {
	out, err := Encode(Default(), FormatYAML)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(string(out), "panel_color: '#1c1e22c0'") && !strings.Contains(string(out), `panel_color: "#1c1e22c0"`) {
		t.Errorf("expected hex panel color in output:\n%s", out)
	}
}
