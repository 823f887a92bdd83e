package protection

// Overrides supplies per-track values that take precedence over the
// baked tables, for a caller that has obtained fresher data (the
// original project's own TODO was to read this from track 67.0 of
// the target disk at decode time rather than freeze it).
type Overrides struct {
	ABCChem        map[int]uint16
	ABCChemTimsoft map[int]uint16
	Inferior       map[int]uint16
}

var active *Overrides

// SetOverrides installs o as the active override set. A nil o clears
// any previously installed overrides.
func SetOverrides(o *Overrides) {
	active = o
}

// ABCChemAt returns the protection offset for tracknr, preferring an
// active override over the baked table.
func ABCChemAt(tracknr int) uint16 {
	if active != nil {
		if v, ok := active.ABCChem[tracknr]; ok {
			return v
		}
	}
	return ABCChem[tracknr]
}

// ABCChemTimsoftAt returns the protection offset for tracknr,
// preferring an active override over the baked table.
func ABCChemTimsoftAt(tracknr int) uint16 {
	if active != nil {
		if v, ok := active.ABCChemTimsoft[tracknr]; ok {
			return v
		}
	}
	return ABCChemTimsoft[tracknr]
}

// InferiorAt returns the protection offset for tracknr, preferring
// an active override over the baked table.
func InferiorAt(tracknr int) uint16 {
	if active != nil {
		if v, ok := active.Inferior[tracknr]; ok {
			return v
		}
	}
	return Inferior[tracknr]
}
