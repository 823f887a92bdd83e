package protection

import "testing"

func TestOverrideTakesPrecedenceOverTable(t *testing.T) {
	t.Cleanup(func() { SetOverrides(nil) })

	baked := ABCChem[5]
	SetOverrides(&Overrides{ABCChem: map[int]uint16{5: baked + 1}})
	if got := ABCChemAt(5); got != baked+1 {
		t.Errorf("ABCChemAt(5) = %#x, want %#x", got, baked+1)
	}
	if got := ABCChemAt(6); got != ABCChem[6] {
		t.Errorf("ABCChemAt(6) = %#x, want baked %#x", got, ABCChem[6])
	}
}

func TestNilOverridesFallsBackToTable(t *testing.T) {
	SetOverrides(nil)
	if got := InferiorAt(3); got != Inferior[3] {
		t.Errorf("InferiorAt(3) = %#x, want baked %#x", got, Inferior[3])
	}
}
