package zazelaznabrama

import (
	"testing"

	"amigatrack/mfm"
	"amigatrack/track"
)

func TestBootTrackPublishesProtectionTable(t *testing.T) {
	d := track.NewDisk()
	ti := track.NewInfo(track.TypeZaZelaznaBramaBoot)
	data := make([]byte, nrSectors*sectorPayload)
	for i := 4; i < 308; i++ {
		data[i] = byte(i)
	}
	ti.Dat = data
	ti.Len = len(data)
	d.Tracks[0] = ti

	h := track.Lookup(track.TypeZaZelaznaBramaBoot)
	w := mfm.NewTrackWriter()
	h.ReadRaw(d, 0, w)
	r := mfm.NewBitReader(w.Flux())

	d2 := track.NewDisk()
	d2.Tracks[0] = track.NewInfo(track.TypeZaZelaznaBramaBoot)
	block, ok := h.WriteRaw(d2, 0, r)
	if !ok {
		t.Fatal("WriteRaw failed")
	}
	if len(block) != len(data) {
		t.Fatalf("len(block) = %d, want %d", len(block), len(data))
	}

	table, ok := d2.Tags.Get(track.TagZaZelaznaBramaProtection)
	if !ok {
		t.Fatal("protection table tag was not published")
	}
	if len(table) != 304 {
		t.Fatalf("len(table) = %d, want 304", len(table))
	}
	for i := range table {
		if want := byte(4 + i); table[i] != want {
			t.Fatalf("table[%d] = %#02x, want %#02x", i, table[i], want)
		}
	}

	if d2.Tracks[0].Type != track.TypeZaZelaznaBramaBoot {
		t.Errorf("Type = %v, want restored to TypeZaZelaznaBramaBoot", d2.Tracks[0].Type)
	}
}
