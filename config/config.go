// Package config loads optional overrides for the ego-family
// protection offset tables, following the original project's own
// noted TODO of reading the true per-disk offsets (from track 67.0)
// instead of relying solely on baked constants.
package config

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"

	"amigatrack/protection"
)

//go:embed protection.toml
var defaultConfig []byte

type protectionEntry struct {
	Track int    `toml:"track"`
	Value uint16 `toml:"value"`
}

type protectionTable struct {
	Entries []protectionEntry `toml:"entries"`
}

type fileFormat struct {
	ABCChem        protectionTable `toml:"abc_chem"`
	ABCChemTimsoft protectionTable `toml:"abc_chem_timsoft"`
	Inferior       protectionTable `toml:"inferior"`
}

func (t protectionTable) toMap() map[int]uint16 {
	m := make(map[int]uint16, len(t.Entries))
	for _, e := range t.Entries {
		m[e.Track] = e.Value
	}
	return m
}

// LoadProtectionOverrides parses TOML-encoded protection overrides
// and installs them via protection.SetOverrides. An empty data slice
// loads the embedded default (no overrides).
func LoadProtectionOverrides(data []byte) error {
	if len(data) == 0 {
		data = defaultConfig
	}
	var ff fileFormat
	if _, err := toml.Decode(string(data), &ff); err != nil {
		return fmt.Errorf("config: decode protection overrides: %w", err)
	}
	protection.SetOverrides(&protection.Overrides{
		ABCChem:        ff.ABCChem.toMap(),
		ABCChemTimsoft: ff.ABCChemTimsoft.toMap(),
		Inferior:       ff.Inferior.toMap(),
	})
	return nil
}
