package core

import "testing"

func TestNearest(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want Color
	}{
		{"brick blue", RGB{0.2, 0.6, 1.0}, ColorBrightBlue},
		{"brick green", RGB{0.0, 0.7, 0.0}, ColorGreen},
		{"brick orange", RGB{1.0, 0.5, 0.0}, ColorOrange},
		{"white", RGB{1, 1, 1}, ColorBrightWhite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Nearest(tc.in); got != tc.want {
				t.Errorf("Nearest(%+v) = %d, expected %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestColorRotated(t *testing.T) {
	if ColorCyan.Rotated(1) != ColorRed {
		t.Errorf("Cyan rotated by 1 = %d, expected red", ColorCyan.Rotated(1))
	}
	if ColorRed.Rotated(-1) != ColorCyan {
		t.Errorf("Red rotated by -1 = %d, expected cyan", ColorRed.Rotated(-1))
	}
	if ColorGray.Rotated(3) != ColorGray {
		t.Error("Gray should not rotate")
	}
}
