package lanes

import "testing"

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if p.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", p.Len())
	}
	want := []string{"#0099cc", "#9933cc", "#669900", "#ff8800", "#cc0000"}
	for i, h := range p.Hex() {
		if h != want[i] {
			t.Errorf("color %d = %s, want %s", i, h, want[i])
		}
	}
}

func TestPaletteColor_Cycles(t *testing.T) {
	p := DefaultPalette()
	if p.Color(2) != p.Color(7) {
		t.Errorf("Color(2) = %s, Color(7) = %s; want equal", p.Color(2).Hex(), p.Color(7).Hex())
	}
	if p.Color(0) == p.Color(1) {
		t.Error("adjacent lanes should differ")
	}
	for lane := 0; lane < 20; lane++ {
		if p.Color(lane) != p.Color(lane+p.Len()) {
			t.Errorf("Color(%d) != Color(%d)", lane, lane+p.Len())
		}
	}
}

func TestPaletteColor_NegativeFolds(t *testing.T) {
	p := DefaultPalette()
	if p.Color(-1) != p.Color(4) {
		t.Errorf("Color(-1) = %s, want Color(4) = %s", p.Color(-1).Hex(), p.Color(4).Hex())
	}
	if p.Color(-5) != p.Color(0) {
		t.Errorf("Color(-5) = %s, want Color(0)", p.Color(-5).Hex())
	}
}

func TestNewPalette(t *testing.T) {
	p, err := NewPalette("#ff0000", "#00ff00")
	if err != nil {
		t.Fatalf("NewPalette() error: %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
	if got := p.Color(3).Hex(); got != "#00ff00" {
		t.Errorf("Color(3) = %s, want #00ff00", got)
	}

	if _, err := NewPalette(); err == nil {
		t.Error("empty palette should fail")
	}
	if _, err := NewPalette("#ff0000", "teal"); err == nil {
		t.Error("malformed hex should fail")
	}
}

func TestZeroPaletteIsDefault(t *testing.T) {
	var p Palette
	if p.Len() != 5 || p.Color(1) != DefaultPalette().Color(1) {
		t.Error("zero Palette should behave as the default palette")
	}
}

func TestPaletteColorsIsCopy(t *testing.T) {
	p := DefaultPalette()
	cs := p.Colors()
	cs[0] = cs[1]
	if p.Color(0) == p.Color(1) {
		t.Error("Colors() must not alias the palette")
	}
}
