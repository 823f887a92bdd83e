package mfm

import "errors"

// ErrStreamExhausted is returned when the bit-stream reaches the end
// of the track before the requested bits could be supplied.
var ErrStreamExhausted = errors.New("mfm: stream exhausted")

// BitReader presents a Flux's raw MFM cells as a cursor with a
// rolling sync window, matching the stream abstraction that the
// ego and copylock handlers scan against.
type BitReader struct {
	flux    *Flux
	pos     int
	word    uint32
	indexBC int
	latency int64
}

// NewBitReader positions a cursor at the start of f.
func NewBitReader(f *Flux) *BitReader {
	return &BitReader{flux: f}
}

// Reset restarts the cursor at the start of the track. Latency is
// preserved; callers that want a fresh measurement call ResetLatency
// as well.
func (r *BitReader) Reset() {
	r.pos = 0
	r.word = 0
	r.indexBC = 0
}

// ResetLatency zeroes the accumulated latency so the caller can
// measure the duration of a following region.
func (r *BitReader) ResetLatency() {
	r.latency = 0
}

// Latency returns the accumulated per-cell timing since the last
// ResetLatency, weighted by each cell's local speed.
func (r *BitReader) Latency() int64 {
	return r.latency
}

// Word returns the current 32-bit rolling window of raw MFM cells.
// The low 16 bits are the conventional sync-comparison window.
func (r *BitReader) Word() uint32 {
	return r.word
}

// IndexOffsetBC returns the bit count since the cursor was last Reset.
func (r *BitReader) IndexOffsetBC() int {
	return r.indexBC
}

// NextBit advances the cursor by one raw MFM cell, updating Word and
// IndexOffsetBC, and returns the cell value.
func (r *BitReader) NextBit() (int, error) {
	if r.pos >= r.flux.TotalBits {
		return 0, ErrStreamExhausted
	}
	speed := r.flux.speedAt(r.pos)
	bit := r.flux.bit(r.pos)
	r.pos++
	r.indexBC++
	r.word = (r.word << 1) | uint32(bit)
	r.latency += int64(2000) * int64(speed) / int64(SpeedNominal)
	return bit, nil
}

// NextBits advances the cursor by n raw MFM cells, returning them
// packed MSB-first into the low n bits of the result.
func (r *BitReader) NextBits(n int) (uint32, error) {
	var v uint32
	for i := 0; i < n; i++ {
		b, err := r.NextBit()
		if err != nil {
			return 0, err
		}
		v = (v << 1) | uint32(b)
	}
	return v, nil
}

// NextBytes reads n bytes of raw MFM cells (8n raw bits) into buf,
// which must have length >= n.
func (r *BitReader) NextBytes(buf []byte, n int) error {
	for i := 0; i < n; i++ {
		v, err := r.NextBits(8)
		if err != nil {
			return err
		}
		buf[i] = byte(v)
	}
	return nil
}

// AtEnd reports whether the cursor has consumed the whole track.
func (r *BitReader) AtEnd() bool {
	return r.pos >= r.flux.TotalBits
}
