package amigados

import (
	"testing"

	"amigatrack/mfm"
	"amigatrack/track"
)

func TestRoundTrip(t *testing.T) {
	d := track.NewDisk()
	ti := track.NewInfo(track.TypeAmigaDOS)
	data := make([]byte, nrSectors*sectorPayload)
	for i := range data {
		data[i] = byte(i * 13)
	}
	ti.Dat = data
	ti.Len = len(data)
	d.Tracks[0] = ti

	h := track.Lookup(track.TypeAmigaDOS)
	w := mfm.NewTrackWriter()
	h.ReadRaw(d, 0, w)
	r := mfm.NewBitReader(w.Flux())

	d2 := track.NewDisk()
	d2.Tracks[0] = track.NewInfo(track.TypeAmigaDOS)
	got, ok := h.WriteRaw(d2, 0, r)
	if !ok {
		t.Fatal("WriteRaw failed")
	}
	if len(got) != len(data) {
		t.Fatalf("len(payload) = %d, want %d", len(got), len(data))
	}
	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("byte %d = %#02x, want %#02x", i, got[i], data[i])
		}
	}
	if d2.Tracks[0].ValidSectorCount() != nrSectors {
		t.Errorf("ValidSectorCount() = %d, want %d", d2.Tracks[0].ValidSectorCount(), nrSectors)
	}
}
