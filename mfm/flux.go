// Package mfm implements MFM bit-level coding and the raw bit-stream
// reader/writer pair used by track-format handlers.
package mfm

// SpeedNominal is the fixed-point percentage (×1000) representing a
// cell written at the nominal rate: 100000 means 100.000%.
const SpeedNominal uint32 = 100000

// SpeedRegion marks the speed in effect from StartBit (inclusive) to
// the next region's StartBit (exclusive), or to the end of the track
// for the last region.
type SpeedRegion struct {
	StartBit int
	Speed    uint32
}

// Flux is the in-memory RAW form of a track: a bit-stream of MFM
// cells plus the speed annotation needed to reproduce per-cell
// timing without a physical flux capture.
type Flux struct {
	Data      []byte
	TotalBits int
	Regions   []SpeedRegion
}

// speedAt returns the speed in effect at bit position pos.
func (f *Flux) speedAt(pos int) uint32 {
	speed := SpeedNominal
	for _, r := range f.Regions {
		if r.StartBit > pos {
			break
		}
		speed = r.Speed
	}
	return speed
}

// bit returns the MFM cell at bit position pos (0 = MSB of Data[0]).
func (f *Flux) bit(pos int) int {
	byteIdx := pos / 8
	bitIdx := 7 - uint(pos%8)
	return int((f.Data[byteIdx] >> bitIdx) & 1)
}
