// Package copylock implements the Rob Northen CopyLock eleven-sector
// track format, whose payload bytes are generated by a continuous
// 23-bit linear-feedback shift register across the whole track.
package copylock

const stateMask = 1<<23 - 1

// NextState advances a 23-bit LFSR state by one step.
func NextState(x uint32) uint32 {
	return ((x << 1) & stateMask) | (((x >> 22) ^ x) & 1)
}

// PrevState is the inverse of NextState.
func PrevState(x uint32) uint32 {
	return (x >> 1) | ((((x >> 1) ^ x) & 1) << 22)
}

// StateByte returns the 8-bit window of state exposed as a payload
// byte.
func StateByte(x uint32) byte {
	return byte(x >> 15)
}

// Seek walks seed across whole sectors from sector "from" to sector
// "to", returning the resulting state. Per-sector advance is 512
// byte-states, except a pass through sector 6 advances only 496 (the
// 16-byte signature is not part of the LFSR stream there) and, in
// the old-style variant only, a pass through sector 5 advances 528
// (it absorbs the 16 bytes sector 6's signature otherwise removes).
func Seek(seed uint32, from, to int, oldStyle bool) uint32 {
	x := seed
	for from != to {
		if from > to {
			from--
		}
		sz := 512
		if from == 6 {
			sz -= 16
		}
		if oldStyle && from == 5 {
			sz += 16
		}
		for ; sz > 0; sz-- {
			if from < to {
				x = NextState(x)
			} else {
				x = PrevState(x)
			}
		}
		if from < to {
			from++
		}
	}
	return x
}
