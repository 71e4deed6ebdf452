package assets

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestResolveScenePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"demo", "demo.scene.json"},
		{"scenes/demo", "scenes/demo.scene.json"},
		{"demo.scene.json", "demo.scene.json"},
		{"assets/scenes/default.scene.json", "assets/scenes/default.scene.json"},
	}

	for _, c := range cases {
		if got := ResolveScenePath(c.in); got != c.want {
			t.Errorf("ResolveScenePath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLookupColor(t *testing.T) {
	if LookupColor("Orange") != rl.Orange {
		t.Error("Expected Orange to resolve")
	}

	// Unknown names fall back to white so scenes still render.
	if LookupColor("NotAColor") != rl.White {
		t.Error("Expected unknown color to fall back to white")
	}
}

func TestLookupColorNameRoundTrip(t *testing.T) {
	for name := range colorByName {
		if got := LookupColorName(LookupColor(name)); got != name {
			t.Errorf("Color %q round-tripped to %q", name, got)
		}
	}

	if got := LookupColorName(rl.NewColor(1, 2, 3, 4)); got != "" {
		t.Errorf("Unknown color should map to empty name, got %q", got)
	}
}
