package texpaint

import "testing"

// TestHex tests hex color parsing.
func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"long form", "#FF0000", Red},
		{"no hash", "00FF00", Green},
		{"short form", "#00F", Blue},
		{"with alpha", "#FF000080", RGBA{R: 1, G: 0, B: 0, A: float64(0x80) / 255}},
		{"invalid", "xyz", RGBA{R: 0, G: 0, B: 0, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

// TestLerp tests linear color interpolation.
func TestLerp(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 {
		t.Errorf("Lerp midpoint = %v, want 0.5 components", mid)
	}
	if got := Red.Lerp(Blue, 0); got != Red {
		t.Errorf("Lerp(0) = %v, want %v", got, Red)
	}
	if got := Red.Lerp(Blue, 1); got != Blue {
		t.Errorf("Lerp(1) = %v, want %v", got, Blue)
	}
}

// TestMin tests the componentwise minimum.
func TestMin(t *testing.T) {
	got := RGBA{R: 0.8, G: 0.2, B: 0.5, A: 1}.Min(RGBA{R: 0.3, G: 0.9, B: 0.5, A: 1})
	want := RGBA{R: 0.3, G: 0.2, B: 0.5, A: 1}
	if got != want {
		t.Errorf("Min = %v, want %v", got, want)
	}
}
