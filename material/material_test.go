package material

import "testing"

func TestParseRoundtrip(t *testing.T) {
	for m := Material(0); m < Count; m++ {
		got, err := Parse(m.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("expected %s, got %s", m, got)
		}
	}
	if _, err := Parse("chrome"); err == nil {
		t.Error("expected error for unknown material")
	}
}

func TestTranslucent(t *testing.T) {
	if !Glass.Translucent() {
		t.Error("glass should be translucent")
	}
	for _, m := range []Material{Metal, Rubber, CarRed, Wood} {
		if m.Translucent() {
			t.Errorf("%s should be opaque", m)
		}
	}
}

func TestColor(t *testing.T) {
	c := CarRed.Color()
	if c.R <= c.G || c.R <= c.B {
		t.Errorf("expected red-dominant colour, got %+v", c)
	}
	if c.A != 255 {
		t.Errorf("expected opaque alpha, got %d", c.A)
	}
	if a := Glass.Color().A; a != 64 {
		t.Errorf("expected glass alpha 64, got %d", a)
	}
}

func TestOutOfRangeFallsBack(t *testing.T) {
	if Material(200).Properties() != Metal.Properties() {
		t.Error("expected out-of-range material to fall back to metal")
	}
}
