// Package amigados is a minimal, self-consistent stand-in for the
// stock AmigaDOS sector handler. It is not a faithful reproduction
// of the real on-disk format; it exists only so the za-zelazna-brama
// boot handler has something concrete to delegate to when
// exercising its protection-table extraction end to end.
package amigados

import (
	"fmt"

	"amigatrack/mfm"
	"amigatrack/track"
)

const (
	sectorPayload = 512
	nrSectors     = 11
)

var marker = []byte{0x00, 0xA1, 0xA1}

// Handler implements the stand-in odd/even sector convention:
// a 3-byte literal marker, a 4-byte odd/even identifier, four
// discarded odd/even label words, a plain checksum over the
// identifier and label, a plain checksum over the payload, and the
// odd/even 512-byte payload itself.
type Handler struct{}

func (Handler) BytesPerSector() int { return sectorPayload }
func (Handler) NRSectors() int      { return nrSectors }

// nextDataBit reads one decoded data bit by discarding the
// interleaved clock bit, matching the convention the marker and
// header fields of this format are written in.
func nextDataBit(r *mfm.BitReader) (int, error) {
	if _, err := r.NextBit(); err != nil {
		return 0, err
	}
	return r.NextBit()
}

// scanMarker advances r bit by bit until the last len(marker)*8
// decoded data bits equal marker.
func scanMarker(r *mfm.BitReader) error {
	var window uint32
	want := uint32(marker[0])<<16 | uint32(marker[1])<<8 | uint32(marker[2])
	const mask = 1<<24 - 1
	for {
		bit, err := nextDataBit(r)
		if err != nil {
			return err
		}
		window = ((window << 1) | uint32(bit)) & mask
		if window == want {
			return nil
		}
	}
}

// WriteRaw scans the stream for sector markers until every sector of
// the track has been decoded, assembling them into one contiguous
// nrSectors*sectorPayload byte block.
func (h Handler) WriteRaw(d *track.Disk, tracknr int, s *mfm.BitReader) ([]byte, bool) {
	ti := d.Tracks[tracknr]
	block := make([]byte, nrSectors*sectorPayload)

	var seen [nrSectors]bool
	for found := 0; found < nrSectors; {
		sector, payload, err := h.readSector(s, tracknr)
		if err != nil {
			return nil, false
		}
		if seen[sector] {
			continue
		}
		copy(block[sector*sectorPayload:], payload)
		seen[sector] = true
		found++
	}
	for sector := 0; sector < nrSectors; sector++ {
		ti.SetSectorValid(sector)
	}
	ti.Dat = block
	ti.Len = len(block)
	return block, true
}

// readSector scans for sector markers, retrying on a header checksum
// mismatch or nonsensical header, until it decodes a plausible
// sector or the stream is exhausted.
func (Handler) readSector(s *mfm.BitReader, tracknr int) (int, []byte, error) {
	for {
		if err := scanMarker(s); err != nil {
			return 0, nil, err
		}

		var headerSum uint32
		ident, err := mfm.DecodeWordOddEvenSum(s, &headerSum)
		if err != nil {
			return 0, nil, err
		}
		if _, err := decodeLabel(s, &headerSum); err != nil {
			return 0, nil, err
		}

		wantChecksum, err := mfm.DecodeAll(s, 4)
		if err != nil {
			return 0, nil, err
		}
		got := uint32(wantChecksum[0])<<24 | uint32(wantChecksum[1])<<16 | uint32(wantChecksum[2])<<8 | uint32(wantChecksum[3])
		if got != headerSum {
			continue
		}

		format := byte(ident >> 24)
		sector := int(ident >> 8 & 0xff)
		if format != 0xFF || sector < 0 || sector >= nrSectors {
			continue
		}

		dataChecksumBytes, err := mfm.DecodeAll(s, 4)
		if err != nil {
			return 0, nil, err
		}
		wantDataSum := uint32(dataChecksumBytes[0])<<24 | uint32(dataChecksumBytes[1])<<16 | uint32(dataChecksumBytes[2])<<8 | uint32(dataChecksumBytes[3])

		payload, err := mfm.DecodeOddEven(s, sectorPayload)
		if err != nil {
			return 0, nil, err
		}
		if got := mfm.BlockChecksum(payload); got != wantDataSum {
			fmt.Printf("amigados: track %d sector %d data checksum mismatch, using data anyway\n", tracknr, sector)
		}

		return sector, payload, nil
	}
}

// decodeLabel discards the four label words of the header, folding
// them into *sum.
func decodeLabel(s *mfm.BitReader, sum *uint32) ([4]uint32, error) {
	var label [4]uint32
	for i := range label {
		w, err := mfm.DecodeWordOddEvenSum(s, sum)
		if err != nil {
			return label, err
		}
		label[i] = w
	}
	return label, nil
}

// ReadRaw encodes all nrSectors sectors of the disk's AmigaDOS track
// into w, in order, from the assembled payload at
// d.Tracks[tracknr].Dat.
func (h Handler) ReadRaw(d *track.Disk, tracknr int, w *mfm.TrackWriter) {
	ti := d.Tracks[tracknr]
	for sector := 0; sector < nrSectors; sector++ {
		h.writeSector(w, tracknr, sector, ti.Dat[sector*sectorPayload:(sector+1)*sectorPayload])
	}
}

func (Handler) writeSector(w *mfm.TrackWriter, tracknr, sector int, payload []byte) {
	w.Bits(mfm.SpeedAvg, mfm.CodingAll, 24, uint32(marker[0])<<16|uint32(marker[1])<<8|uint32(marker[2]))

	var headerSum uint32
	ident := uint32(0xFF)<<24 | uint32(tracknr&0xff)<<16 | uint32(sector&0xff)<<8
	w.WriteOddEvenWordSum(mfm.SpeedAvg, ident, &headerSum)
	for i := 0; i < 4; i++ {
		w.WriteOddEvenWordSum(mfm.SpeedAvg, 0, &headerSum)
	}
	w.Bits(mfm.SpeedAvg, mfm.CodingAll, 32, headerSum)

	dataSum := mfm.BlockChecksum(payload)
	w.Bits(mfm.SpeedAvg, mfm.CodingAll, 32, dataSum)

	w.WriteOddEvenBlock(mfm.SpeedAvg, payload)
}

func init() {
	track.Register(track.TypeAmigaDOS, Handler{})
}
