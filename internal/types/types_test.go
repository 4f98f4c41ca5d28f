package types

import "testing"

func TestReservedIdsStable(t *testing.T) {
	in := NewInterner()
	if Error != 0 {
		t.Fatalf("Error must be 0, got %d", Error)
	}
	if in.Resolve(Error).Kind != KindError {
		t.Fatalf("id 0 must resolve to KindError")
	}
	if in.Resolve(Void).Kind != KindVoid {
		t.Fatalf("Void id must resolve to KindVoid")
	}
	if Error >= Void {
		t.Fatalf("Error must sort before Void")
	}
}

func TestFunctionInterningDeduplicates(t *testing.T) {
	in := NewInterner()
	a := in.Function([]TypeId{Integer, String}, Void, 2)
	b := in.Function([]TypeId{Integer, String}, Void, 2)
	if a != b {
		t.Fatalf("structurally equal function types must intern to the same id")
	}
	c := in.Function([]TypeId{Integer, String}, Void, 1)
	if a == c {
		t.Fatalf("different min argument counts must not collide")
	}
}

func TestEnumInterningDeduplicates(t *testing.T) {
	in := NewInterner()
	a := in.Enum(in.HAlign(), []string{"Left", "Center", "Right"})
	b := in.Enum(in.HAlign(), []string{"Left", "Center", "Right"})
	if a != b {
		t.Fatalf("structurally equal enums must intern to the same id")
	}
}

func TestCustomElementInterningDeduplicates(t *testing.T) {
	in := NewInterner()
	a := in.CustomElement("QrCode")
	b := in.CustomElement("QrCode")
	c := in.CustomElement("Chart")
	if a != b {
		t.Fatalf("same name must intern to same id")
	}
	if a == c {
		t.Fatalf("different names must intern to different ids")
	}
}
