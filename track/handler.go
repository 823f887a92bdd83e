package track

import "amigatrack/mfm"

// TagZaZelaznaBramaProtection identifies the 304-byte per-track
// bit-length offset table published by the za_zelazna_brama_boot
// handler and consumed by za_zelazna_brama ego decodes on the same
// disk.
const TagZaZelaznaBramaProtection = "ZA_ZELAZNA_BRAMA_PROTECTION"

// Handler decodes and encodes one track format.
type Handler interface {
	// BytesPerSector returns the payload size of one sector.
	BytesPerSector() int
	// NRSectors returns the number of sectors the format defines.
	NRSectors() int
	// WriteRaw decodes a track's raw flux into its payload. ok is
	// false if no valid occurrence of the format was found before the
	// stream was exhausted; Disk and Info are otherwise untouched.
	WriteRaw(d *Disk, tracknr int, s *mfm.BitReader) (payload []byte, ok bool)
	// ReadRaw encodes a track's payload into w.
	ReadRaw(d *Disk, tracknr int, w *mfm.TrackWriter)
}

var registry = map[Type]Handler{}

// Register installs h as the handler for t. Called from each format
// package's init().
func Register(t Type, h Handler) {
	registry[t] = h
}

// Lookup returns the handler registered for t, or nil if none was
// registered.
func Lookup(t Type) Handler {
	return registry[t]
}
