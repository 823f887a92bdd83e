// Package zazelaznabrama implements the boot track of the Za
// Zelazna Brama disk 2: an AmigaDOS track whose payload doubles as
// the source of per-track bit-length offsets for every ego-family
// track on the disk.
package zazelaznabrama

import (
	_ "amigatrack/amigados"
	"amigatrack/mfm"
	"amigatrack/track"
)

const (
	sectorPayload = 512
	nrSectors     = 11
)

// BootHandler decodes the boot track via the AmigaDOS stand-in, then
// extracts and publishes the protection table found at payload
// offset [4, 308).
type BootHandler struct{}

func (BootHandler) BytesPerSector() int { return sectorPayload }
func (BootHandler) NRSectors() int      { return nrSectors }

func (BootHandler) WriteRaw(d *track.Disk, tracknr int, s *mfm.BitReader) ([]byte, bool) {
	ti := d.Tracks[tracknr]
	originalType := ti.Type
	ti.Type = track.TypeAmigaDOS

	delegate := track.Lookup(track.TypeAmigaDOS)
	block, ok := delegate.WriteRaw(d, tracknr, s)
	if !ok || ti.Type != track.TypeAmigaDOS {
		ti.Type = originalType
		return nil, false
	}

	s.Reset()

	table := make([]byte, 304)
	copy(table, block[4:308])
	d.Tags.Set(track.TagZaZelaznaBramaProtection, table)

	ti.Type = originalType
	ti.SetAllSectorsValid()
	return block, true
}

func (BootHandler) ReadRaw(d *track.Disk, tracknr int, w *mfm.TrackWriter) {
	delegate := track.Lookup(track.TypeAmigaDOS)
	delegate.ReadRaw(d, tracknr, w)
}

func init() {
	track.Register(track.TypeZaZelaznaBramaBoot, BootHandler{})
}
