package materials

import "testing"

func TestGet(t *testing.T) {
	m, ok := Get("steel")
	if !ok {
		t.Fatal("steel should exist")
	}
	if m.E != 200e9 {
		t.Errorf("expected E=200 GPa, got %g", m.E)
	}
	if m.Density != 7850 {
		t.Errorf("expected density 7850, got %g", m.Density)
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, ok := Get("adamantium"); ok {
		t.Error("unknown material should not resolve")
	}
	// case-sensitive
	if _, ok := Get("Steel"); ok {
		t.Error("lookups should be lower-case only")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 4 {
		t.Fatalf("expected 4 materials, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Error("names should be sorted")
		}
	}
	for _, name := range names {
		if _, ok := Get(name); !ok {
			t.Errorf("listed material %q not found", name)
		}
	}
}
