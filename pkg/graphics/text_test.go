package graphics

import "testing"

func TestFallbackMeasure(t *testing.T) {
	m, err := NewFontManager()
	if err != nil {
		t.Fatal(err)
	}

	got, err := m.Measure("abc", TextStyle{FontSize: 13})
	if err != nil {
		t.Fatal(err)
	}
	if got != (TextMetrics{Width: 21, Ascent: 11, Descent: 2}) {
		t.Errorf("Measure at 13 = %+v", got)
	}

	got, _ = m.Measure("abc", TextStyle{FontSize: 26})
	if got.Width != 42 || got.Extent() != (Extent{X: 42, Y: 26}) {
		t.Errorf("Measure at 26 = %+v", got)
	}
}

func TestRegisterFontErrors(t *testing.T) {
	m, err := NewFontManager()
	if err != nil {
		t.Fatal(err)
	}
	if err := m.RegisterFont("", []byte{1}); err == nil {
		t.Error("empty name should fail")
	}
	if err := m.RegisterFont("broken", []byte("not a font")); err == nil {
		t.Error("garbage data should fail")
	}
	if m.HasFont("broken") {
		t.Error("failed registration should not add the family")
	}
	if err := m.LoadFont("missing", "testdata/does-not-exist.ttf"); err == nil {
		t.Error("missing file should fail")
	}
}

func TestTextBaseline(t *testing.T) {
	m := TextMetrics{Width: 20, Ascent: 10, Descent: 4}
	tests := []struct {
		name  string
		align TextAlign
		want  Point
	}{
		{"left baseline", TextAlignLeft | TextAlignBaseline, Pt(100, 50)},
		{"center middle", TextAlignCenter | TextAlignMiddle, Pt(90, 53)},
		{"right top", TextAlignRight | TextAlignTop, Pt(80, 60)},
		{"left bottom", TextAlignLeft | TextAlignBottom, Pt(100, 46)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Baseline(Pt(100, 50), tt.align); got != tt.want {
				t.Errorf("Baseline = %v, want %v", got, tt.want)
			}
		})
	}
}
