package graphics

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#673AB7", RGB(0x67, 0x3A, 0xB7), false},
		{"#bdbdbd", RGB(0xBD, 0xBD, 0xBD), false},
		{"#fff", ColorWhite, false},
		{"673AB7", 0, true},
		{"#12345", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorLerp(t *testing.T) {
	from := RGB(0, 0, 0)
	to := RGB(200, 100, 50)

	if got := from.Lerp(to, 0); got != from {
		t.Errorf("Lerp(0) = %v, want %v", got, from)
	}
	if got := from.Lerp(to, 1); got != to {
		t.Errorf("Lerp(1) = %v, want %v", got, to)
	}
	if got, want := from.Lerp(to, 0.5), RGB(100, 50, 25); got != want {
		t.Errorf("Lerp(0.5) = %v, want %v", got, want)
	}
	if got := from.Lerp(to, 2); got != to {
		t.Errorf("Lerp(2) should clamp, got %v", got)
	}
}

func TestColorNRGBA(t *testing.T) {
	c := RGBA8(1, 2, 3, 4)
	n := c.NRGBA()
	if n.R != 1 || n.G != 2 || n.B != 3 || n.A != 4 {
		t.Errorf("NRGBA() = %+v, want {1 2 3 4}", n)
	}
	if got := c.WithAlpha8(0xFF).String(); got != "#FF010203" {
		t.Errorf("String() = %q, want %q", got, "#FF010203")
	}
}
