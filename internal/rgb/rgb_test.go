package rgb

import (
	"image/color"
	"sort"
	"testing"
)

func TestPresetNamesOrderedAndCopied(t *testing.T) {
	names := PresetNames()
	if len(names) == 0 {
		t.Fatal("expected built-in presets")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("preset names not sorted: %v", names)
	}

	names[0] = "tampered"
	if PresetNames()[0] == "tampered" {
		t.Error("PresetNames returned the internal slice")
	}
}

func TestIsPreset(t *testing.T) {
	if !IsPreset("Plasma") {
		t.Error("expected Plasma to be a known preset")
	}
	if IsPreset("Not A Preset") {
		t.Error("unknown name reported as preset")
	}
}

func TestHexName(t *testing.T) {
	tests := []struct {
		c    color.RGBA
		want string
	}{
		{color.RGBA{R: 255, A: 255}, "#ff0000"},
		{color.RGBA{G: 255, A: 255}, "#00ff00"},
		{color.RGBA{R: 255, G: 255, B: 255, A: 255}, "#ffffff"},
		{color.RGBA{A: 255}, "#000000"},
	}
	for _, tt := range tests {
		if got := HexName(tt.c); got != tt.want {
			t.Errorf("HexName(%+v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestBlendEndpoints(t *testing.T) {
	start := color.RGBA{R: 255, A: 255}
	end := color.RGBA{B: 255, A: 255}

	if got := Blend(start, end, 0); got != start {
		t.Errorf("Blend(t=0) = %+v, want start", got)
	}
	if got := Blend(start, end, 1); got != end {
		t.Errorf("Blend(t=1) = %+v, want end", got)
	}
	// Out-of-range t clamps to the endpoints.
	if got := Blend(start, end, -3); got != start {
		t.Errorf("Blend(t=-3) = %+v, want start", got)
	}
	if got := Blend(start, end, 7); got != end {
		t.Errorf("Blend(t=7) = %+v, want end", got)
	}
}

func TestGradientFrame(t *testing.T) {
	start := color.RGBA{R: 255, A: 255}
	end := color.RGBA{B: 255, A: 255}

	img := GradientFrame(start, end, 8, 4)
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("frame bounds %v", b)
	}
	if got := img.RGBAAt(0, 0); got != start {
		t.Errorf("left edge = %+v, want start color", got)
	}
	if got := img.RGBAAt(7, 3); got != end {
		t.Errorf("right edge = %+v, want end color", got)
	}
	// Columns are uniform.
	if img.RGBAAt(3, 0) != img.RGBAAt(3, 3) {
		t.Error("expected vertical uniformity within a column")
	}
}
