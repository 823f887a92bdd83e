package copylock

import (
	"fmt"
	"os"

	"amigatrack/mfm"
	"amigatrack/track"
)

const (
	nrSectors     = 11
	sectorPayload = 512
	sigLen        = 16
)

var syncList = [nrSectors]uint16{
	0x8a91, 0x8a44, 0x8a45, 0x8a51, 0x8912, 0x8911, 0x8914, 0x8915, 0x8944, 0x8945, 0x8951,
}

var sec6Signature = []byte("Rob Northen Comp")

// Handler decodes and encodes one copylock variant; OldStyle selects
// the older sector-identification convention and its different LFSR
// seek advance across sectors 5 and 6.
type Handler struct {
	OldStyle bool
}

func (Handler) BytesPerSector() int { return sectorPayload }
func (Handler) NRSectors() int      { return nrSectors }

func sectorSpeed(sector int) uint32 {
	switch sector {
	case 4:
		return 95000
	case 6:
		return 105000
	default:
		return mfm.SpeedAvg
	}
}

// identifySector reports the sector number the current sync window
// names, if any.
func (h Handler) identifySector(s *mfm.BitReader) (int, bool) {
	w := uint16(s.Word())
	if h.OldStyle {
		if w&0xff00 != 0x6500 {
			return 0, false
		}
		sector := int(mfm.DecodeBitsAll(w) & 0xf)
		if sector < 0 || sector >= nrSectors {
			return 0, false
		}
		if w != mfm.EncodeByteAll(byte(0xb0+sector))|(1<<13) {
			return 0, false
		}
		return sector, true
	}
	for i, sync := range syncList {
		if w == sync {
			return i, true
		}
	}
	return 0, false
}

// WriteRaw scans the stream for copylock sectors until every sector
// is valid or the stream is exhausted, recovering the track's LFSR
// seed and reconstructing any sectors that could not be read.
func (h Handler) WriteRaw(d *track.Disk, tracknr int, s *mfm.BitReader) ([]byte, bool) {
	ti := d.Tracks[tracknr]
	var (
		seed       uint32
		haveSeed   bool
		latencies  [nrSectors]int64
		leastValid = nrSectors
	)

	for {
		if ti.ValidSectorCount() == nrSectors {
			break
		}
		if _, err := s.NextBit(); err != nil {
			break
		}
		sector, ok := h.identifySector(s)
		if !ok || ti.IsSectorValid(sector) {
			continue
		}
		dataBitOff := s.IndexOffsetBC() - 15

		// Both styles are followed by a common MFM-all sector-index
		// byte, structurally distinct from the style-specific sync
		// field identifySector just matched.
		raw, err := s.NextBits(16)
		if err != nil {
			continue
		}
		if int(mfm.DecodeBitsAll(uint16(raw))) != sector {
			continue
		}

		s.ResetLatency()
		payload, err := mfm.DecodeAll(s, sectorPayload)
		if err != nil {
			continue
		}

		cursor := 0
		if sector == 6 {
			if string(payload[:sigLen]) != string(sec6Signature) {
				continue
			}
			cursor = sigLen
		}

		var state uint32
		if haveSeed {
			// Seek's own sector-6 advance adjustment already accounts
			// for the signature region; the state it returns is the
			// state for the sector's first generated byte, whichever
			// offset that is.
			state = Seek(seed, 0, sector, h.OldStyle)
		} else {
			if cursor+16 > sectorPayload {
				continue
			}
			state = uint32(payload[cursor])<<15 | uint32(payload[cursor+8])<<7 | uint32(payload[cursor+16])>>1
		}

		verified := true
		walk := state
		for i := cursor; i < sectorPayload; i++ {
			if StateByte(walk) != payload[i] {
				verified = false
				break
			}
			walk = NextState(walk)
		}
		if !verified {
			continue
		}

		if !haveSeed {
			s0 := Seek(state, sector, 0, h.OldStyle)
			if s0 == 0 {
				continue
			}
			seed = s0
			haveSeed = true
		}

		latencies[sector] = s.Latency()
		ti.SetSectorValid(sector)
		if sector < leastValid {
			leastValid = sector
			ti.DataBitOff = dataBitOff
		}
	}

	if ti.ValidSectorCount() == 0 {
		return nil, false
	}

	h.validateTiming(latencies, ti)

	if ti.ValidSectorCount() != nrSectors {
		fmt.Fprintf(os.Stderr, "copylock: track %d reconstructing %d missing sector(s) from seed\n",
			tracknr, nrSectors-ti.ValidSectorCount())
		ti.SetAllSectorsValid()
	}

	ti.DataBitOff -= leastValid * (514 + 48) * 8 * 2
	ti.DataBitOff -= 3 * 8 * 2

	block := make([]byte, 4)
	block[0] = byte(seed >> 24)
	block[1] = byte(seed >> 16)
	block[2] = byte(seed >> 8)
	block[3] = byte(seed)
	return block, true
}

// stepOffset advances (or, for negative n, retreats) state by n
// plain LFSR steps, ignoring the sector-6 signature splice.
func stepOffset(state uint32, n int) uint32 {
	for i := 0; i < n; i++ {
		state = NextState(state)
	}
	for i := 0; i > n; i-- {
		state = PrevState(state)
	}
	return state
}

// validateTiming compares each valid sector's measured latency to
// sector 5's, warning (never failing) outside the format's
// documented tolerance: sector 4 should run fast, sector 6 should
// run slow, others should track sector 5 closely.
func (h Handler) validateTiming(latencies [nrSectors]int64, ti *track.Info) {
	base := latencies[5]
	if !ti.IsSectorValid(5) {
		base = 514 * 8 * 2 * 2000
	}
	if base == 0 {
		return
	}
	for sec := 0; sec < nrSectors; sec++ {
		if !ti.IsSectorValid(sec) || sec == 5 {
			continue
		}
		d := 100 * (latencies[sec] - base) / base
		switch sec {
		case 4:
			if d > -4 {
				fmt.Fprintf(os.Stderr, "copylock: sector 4 timing %d%% outside expected -4%% or lower\n", d)
			}
		case 6:
			if d < 4 {
				fmt.Fprintf(os.Stderr, "copylock: sector 6 timing %d%% outside expected +4%% or higher\n", d)
			}
		default:
			if d < -2 || d > 2 {
				fmt.Fprintf(os.Stderr, "copylock: sector %d timing %d%% outside expected +-2%%\n", sec, d)
			}
		}
	}
}

// ReadRaw encodes the track's recovered seed back into eleven
// sectors of sync, header, LFSR payload and gap, one monolithic
// stream with per-sector speed variation.
func (h Handler) ReadRaw(d *track.Disk, tracknr int, w *mfm.TrackWriter) {
	ti := d.Tracks[tracknr]
	seed := uint32(ti.Dat[0])<<24 | uint32(ti.Dat[1])<<16 | uint32(ti.Dat[2])<<8 | uint32(ti.Dat[3])
	w.DisableAutoSectorSplit()

	state := seed
	for sector := 0; sector < nrSectors; sector++ {
		speed := sectorSpeed(sector)

		if h.OldStyle {
			w.Bits(speed, mfm.CodingRaw, 16, uint32(mfm.EncodeByteAll(byte(0xa0+sector)))|(1<<13))
		} else {
			w.Bits(speed, mfm.CodingAll, 8, uint32(0xa0+sector))
		}
		w.Bits(speed, mfm.CodingAll, 16, 0)
		if h.OldStyle {
			w.Bits(speed, mfm.CodingRaw, 16, uint32(mfm.EncodeByteAll(byte(0xb0+sector)))|(1<<13))
		} else {
			w.Bits(speed, mfm.CodingRaw, 16, uint32(syncList[sector]))
		}
		// Common to both styles: an MFM-all sector-index byte,
		// mirroring the unconditional verification in WriteRaw.
		w.Bits(speed, mfm.CodingAll, 8, uint32(sector))

		payload := make([]byte, sectorPayload)
		if sector == 6 {
			if h.OldStyle {
				// Old-style absorbs the signature's 16 states into
				// the sector 5-to-6 transition instead of skipping
				// them, per Seek's per-sector advance table.
				state = stepOffset(state, sigLen)
			}
			copy(payload, sec6Signature)
			walk := state
			for i := sigLen; i < sectorPayload; i++ {
				payload[i] = StateByte(walk)
				walk = NextState(walk)
			}
			state = walk
		} else {
			walk := state
			for i := 0; i < sectorPayload; i++ {
				payload[i] = StateByte(walk)
				walk = NextState(walk)
			}
			state = walk
		}

		for _, b := range payload {
			w.Bits(speed, mfm.CodingAll, 8, uint32(b))
		}
		w.Bits(speed, mfm.CodingAll, 8, 0)

		nextSpeed := sectorSpeed((sector + 1) % nrSectors)
		w.Gap(nextSpeed, 44*8*2)
	}
}

func init() {
	track.Register(track.TypeCopylock, Handler{OldStyle: false})
	track.Register(track.TypeCopylockOld, Handler{OldStyle: true})
}
