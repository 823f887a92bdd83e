// Package ego implements the custom single-sector track format used
// by Behind the Iron Gate, Za Zelazna Brama, ABC Chemii and
// Inferior: a sync word, an MFM odd/even coded payload, and a
// rotate-xor checksum.
package ego

import (
	"amigatrack/mfm"
	"amigatrack/protection"
	"amigatrack/track"
)

type variant int

const (
	variantPlain variant = iota
	variantZaZelaznaBrama
	variantABCChem
	variantABCChemTimsoft
	variantInferior
)

// Handler decodes and encodes one ego-family variant.
type Handler struct {
	sync           uint16
	bytesPerSector int
	variant        variant
}

func (h *Handler) BytesPerSector() int { return h.bytesPerSector }
func (h *Handler) NRSectors() int      { return 1 }

func sum(w, s uint32) uint32 {
	s ^= w
	return (s >> 1) | (s << 31)
}

// WriteRaw scans s for h's sync word, decodes the payload and
// trailing checksum, and on a checksum match applies the variant's
// track bit-length adjustment before returning the payload.
func (h *Handler) WriteRaw(d *track.Disk, tracknr int, s *mfm.BitReader) ([]byte, bool) {
	ti := d.Tracks[tracknr]
	n := h.bytesPerSector / 4

	for {
		if _, err := s.NextBit(); err != nil {
			return nil, false
		}
		if uint16(s.Word()) != h.sync {
			continue
		}

		dataBitOff := s.IndexOffsetBC() - 15

		dat := make([]uint32, n)
		var checksum uint32
		ok := func() bool {
			for i := 0; i < n; i++ {
				w, err := mfm.DecodeWordOddEvenSum(s, nil)
				if err != nil {
					return false
				}
				dat[i] = w
				checksum = sum(w, checksum)
			}
			return true
		}()
		if !ok {
			return nil, false
		}

		csum, err := mfm.DecodeWordOddEvenSum(s, nil)
		if err != nil {
			return nil, false
		}
		if checksum != csum {
			continue
		}

		ti.DataBitOff = dataBitOff
		h.applyProtection(d, ti, tracknr)

		block := make([]byte, h.bytesPerSector)
		for i, w := range dat {
			block[4*i] = byte(w >> 24)
			block[4*i+1] = byte(w >> 16)
			block[4*i+2] = byte(w >> 8)
			block[4*i+3] = byte(w)
		}
		ti.SetAllSectorsValid()
		return block, true
	}
}

func (h *Handler) applyProtection(d *track.Disk, ti *track.Info, tracknr int) {
	switch h.variant {
	case variantZaZelaznaBrama:
		if tbl, ok := d.Tags.Get(track.TagZaZelaznaBramaProtection); ok {
			entry := uint16(tbl[2*tracknr])<<8 | uint16(tbl[2*tracknr+1])
			ti.TotalBits = 100900 + (int(entry) - 0x720) + 46
		}
	case variantABCChem:
		ti.TotalBits = 100900 + (int(protection.ABCChemAt(tracknr)) - 0xA15)
		ti.DataBitOff = 100900
	case variantABCChemTimsoft:
		ti.TotalBits = 100900 + (int(protection.ABCChemTimsoftAt(tracknr)) - 0xA15)
		ti.DataBitOff = 100900
	case variantInferior:
		ti.TotalBits = 100900 + (int(protection.InferiorAt(tracknr)) - 0xA15)
		ti.DataBitOff = 100900
	}
}

// ReadRaw encodes ti.Dat back into its raw sync-plus-odd/even-plus-
// checksum form.
func (h *Handler) ReadRaw(d *track.Disk, tracknr int, w *mfm.TrackWriter) {
	ti := d.Tracks[tracknr]
	n := h.bytesPerSector / 4

	w.Bits(mfm.SpeedAvg, mfm.CodingRaw, 16, uint32(h.sync))

	var checksum uint32
	for i := 0; i < n; i++ {
		word := uint32(ti.Dat[4*i])<<24 | uint32(ti.Dat[4*i+1])<<16 | uint32(ti.Dat[4*i+2])<<8 | uint32(ti.Dat[4*i+3])
		w.WriteOddEvenWordSum(mfm.SpeedAvg, word, nil)
		checksum = sum(word, checksum)
	}
	w.WriteOddEvenWordSum(mfm.SpeedAvg, checksum, nil)
}

func init() {
	track.Register(track.TypeBehindTheIronGate, &Handler{sync: 0x8951, bytesPerSector: 6144, variant: variantPlain})
	track.Register(track.TypeZaZelaznaBrama, &Handler{sync: 0x8951, bytesPerSector: 6144, variant: variantZaZelaznaBrama})
	track.Register(track.TypeABCChemiiA, &Handler{sync: 0x8951, bytesPerSector: 5632, variant: variantABCChem})
	track.Register(track.TypeABCChemiiB, &Handler{sync: 0x4489, bytesPerSector: 5632, variant: variantABCChem})
	track.Register(track.TypeABCChemiiTimsoftA, &Handler{sync: 0x8951, bytesPerSector: 5632, variant: variantABCChemTimsoft})
	track.Register(track.TypeABCChemiiTimsoftB, &Handler{sync: 0x4489, bytesPerSector: 5632, variant: variantABCChemTimsoft})
	track.Register(track.TypeInferior, &Handler{sync: 0x8951, bytesPerSector: 5632, variant: variantInferior})
}
