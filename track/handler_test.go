package track

import (
	"testing"

	"amigatrack/mfm"
)

type fakeHandler struct {
	bps, nr int
}

func (f fakeHandler) BytesPerSector() int { return f.bps }
func (f fakeHandler) NRSectors() int      { return f.nr }
func (f fakeHandler) WriteRaw(*Disk, int, *mfm.BitReader) ([]byte, bool) {
	return nil, false
}
func (f fakeHandler) ReadRaw(*Disk, int, *mfm.TrackWriter) {}

const testType Type = 9001

func init() {
	Register(testType, fakeHandler{bps: 512, nr: 11})
}

func TestLookupReturnsRegisteredHandler(t *testing.T) {
	h := Lookup(testType)
	if h == nil {
		t.Fatal("Lookup returned nil for registered type")
	}
	if h.BytesPerSector() != 512 || h.NRSectors() != 11 {
		t.Errorf("BytesPerSector/NRSectors = %d/%d, want 512/11", h.BytesPerSector(), h.NRSectors())
	}
}

func TestLookupUnregisteredReturnsNil(t *testing.T) {
	if h := Lookup(Type(-1)); h != nil {
		t.Error("Lookup of unregistered type returned non-nil")
	}
}

func TestNewInfoSizesFromHandler(t *testing.T) {
	ti := NewInfo(testType)
	if ti.NRSectors != 11 || ti.BytesPerSector != 512 {
		t.Errorf("NewInfo sizes = %d/%d, want 11/512", ti.NRSectors, ti.BytesPerSector)
	}
}

func TestSectorValidity(t *testing.T) {
	ti := NewInfo(testType)
	if ti.ValidSectorCount() != 0 {
		t.Fatalf("fresh Info has %d valid sectors, want 0", ti.ValidSectorCount())
	}
	ti.SetSectorValid(3)
	ti.SetSectorValid(7)
	if !ti.IsSectorValid(3) || !ti.IsSectorValid(7) {
		t.Error("SetSectorValid/IsSectorValid mismatch")
	}
	if ti.IsSectorValid(0) {
		t.Error("sector 0 reported valid without being set")
	}
	if ti.ValidSectorCount() != 2 {
		t.Errorf("ValidSectorCount() = %d, want 2", ti.ValidSectorCount())
	}
	ti.SetAllSectorsValid()
	if ti.ValidSectorCount() != ti.NRSectors {
		t.Errorf("ValidSectorCount() after SetAllSectorsValid = %d, want %d", ti.ValidSectorCount(), ti.NRSectors)
	}
}
