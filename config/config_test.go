package config

import (
	"testing"

	"amigatrack/protection"
)

func TestLoadProtectionOverrides(t *testing.T) {
	t.Cleanup(func() { protection.SetOverrides(nil) })

	toml := `
[abc_chem]
entries = [{track = 2, value = 0x0A57}]

[abc_chem_timsoft]
entries = []

[inferior]
entries = [{track = 10, value = 0x1234}]
`
	if err := LoadProtectionOverrides([]byte(toml)); err != nil {
		t.Fatalf("LoadProtectionOverrides: %v", err)
	}
	if got := protection.ABCChemAt(2); got != 0x0A57 {
		t.Errorf("ABCChemAt(2) = %#x, want 0xA57", got)
	}
	if got := protection.InferiorAt(10); got != 0x1234 {
		t.Errorf("InferiorAt(10) = %#x, want 0x1234", got)
	}
}

func TestLoadProtectionOverridesEmptyUsesDefault(t *testing.T) {
	t.Cleanup(func() { protection.SetOverrides(nil) })

	if err := LoadProtectionOverrides(nil); err != nil {
		t.Fatalf("LoadProtectionOverrides(nil): %v", err)
	}
	if got := protection.ABCChemAt(0); got != protection.ABCChem[0] {
		t.Errorf("ABCChemAt(0) = %#x, want baked default %#x", got, protection.ABCChem[0])
	}
}
