package track

import "math/bits"

// Info is the mutable per-track record a disk carries: its format,
// decoded payload, sector validity, and raw bit-length metadata.
type Info struct {
	Type           Type
	Len            int
	Dat            []byte
	NRSectors      int
	BytesPerSector int
	ValidSectors   uint32
	DataBitOff     int
	TotalBits      int
}

// NewInfo initializes ti for format t, sizing it from the
// registered handler. It panics if no handler is registered for t,
// matching the framework's assumption that track types are only
// ever constructed from a known, registered format.
func NewInfo(t Type) *Info {
	h := Lookup(t)
	if h == nil {
		panic("track: no handler registered for type " + t.String())
	}
	return &Info{
		Type:           t,
		NRSectors:      h.NRSectors(),
		BytesPerSector: h.BytesPerSector(),
	}
}

// SetSectorValid marks sector sec valid.
func (ti *Info) SetSectorValid(sec int) {
	ti.ValidSectors |= 1 << uint(sec)
}

// IsSectorValid reports whether sector sec has been marked valid.
func (ti *Info) IsSectorValid(sec int) bool {
	return ti.ValidSectors&(1<<uint(sec)) != 0
}

// SetAllSectorsValid marks every sector in [0, NRSectors) valid.
func (ti *Info) SetAllSectorsValid() {
	if ti.NRSectors >= 32 {
		ti.ValidSectors = ^uint32(0)
		return
	}
	ti.ValidSectors = (1 << uint(ti.NRSectors)) - 1
}

// ValidSectorCount returns the number of sectors marked valid.
func (ti *Info) ValidSectorCount() int {
	return bits.OnesCount32(ti.ValidSectors)
}
