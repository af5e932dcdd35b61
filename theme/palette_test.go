package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGPL(t *testing.T) {
	gpl := `GIMP Palette
Name: test
Columns: 0
#
  0   0   0 black
255 255 255 white
`
	path := filepath.Join(t.TempDir(), "test.gpl")
	if err := os.WriteFile(path, []byte(gpl), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadGPL(path)
	if err != nil {
		t.Fatalf("LoadGPL: %v", err)
	}
	if p.Name != "test" {
		t.Errorf("name = %q, want test", p.Name)
	}
	if len(p.Colors) != 2 {
		t.Fatalf("colors = %d, want 2", len(p.Colors))
	}
	if p.Colors[0] != (RGB{0, 0, 0}) || p.Colors[1] != (RGB{255, 255, 255}) {
		t.Errorf("colors = %v", p.Colors)
	}
}

func TestPaletteLookup(t *testing.T) {
	p := &Palette{Colors: []RGB{{0, 0, 0}, {100, 200, 50}}}

	if got := p.Lookup(0); got != (RGB{0, 0, 0}) {
		t.Errorf("Lookup(0) = %v", got)
	}
	if got := p.Lookup(1); got != (RGB{100, 200, 50}) {
		t.Errorf("Lookup(1) = %v", got)
	}
	if got := p.Lookup(0.5); got != (RGB{50, 100, 25}) {
		t.Errorf("Lookup(0.5) = %v, want interpolated midpoint", got)
	}
}

func TestDefaultPaletteCoversRoles(t *testing.T) {
	p := Default()
	if len(p.Colors) < 2 {
		t.Fatalf("default palette has %d colors", len(p.Colors))
	}
	// Every role must resolve without panicking and stay in range.
	for _, role := range []float64{RoleBG, RoleSurface, RoleMuted, RoleFG,
		RoleLeft, RoleRight, RoleWaiting, RoleHitLine, RoleDisabled, RoleSuccess} {
		_ = p.Lookup(role)
	}
}
