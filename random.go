package bigint

import "github.com/agbru/bigint/internal/bigrand"

// GenRandom fills z with length limbs of uniform random bits from the
// process-wide CSPRNG and returns z. When fixed > 0, the top limb is
// masked so that exactly fixed mod W of its high bits are forced to 1
// (fixed == W forces the entire top limb, which always yields a
// negative value since the sign bit is among those forced). Sets len
// to exactly length — unlike every other mutator, GenRandom does not
// run shrinkLen, since callers asking for a specific limb length are
// usually testing capacity/length behaviour itself.
func (z *Int[L]) GenRandom(length, fixed int) *Int[L] {
	return z.genRandomFrom(length, fixed, bigrand.Default)
}

// GenRandomFrom is GenRandom drawing from an explicit Sampler instead of
// the process-wide source, letting tests pin down deterministic fills.
func (z *Int[L]) GenRandomFrom(length, fixed int, src bigrand.Sampler) *Int[L] {
	return z.genRandomFrom(length, fixed, src)
}

func (z *Int[L]) genRandomFrom(length, fixed int, src bigrand.Sampler) *Int[L] {
	if length < 1 {
		length = 1
	}
	w := uint(width[L]())
	z.resize(nextPow2(length))

	limbsPerWord := 64 / int(w)
	i := 0
	for i < length {
		r := src.Uint64()
		for k := 0; k < limbsPerWord && i < length; k++ {
			z.val[i] = L(r)
			r >>= w
			i++
		}
	}
	for i := length; i < len(z.val); i++ {
		z.val[i] = 0
	}
	z.ln = length
	z.signed = true

	if fixed > 0 {
		bitsSet := fixed % int(w)
		if bitsSet == 0 {
			bitsSet = int(w)
		}
		var mask L
		for b := 0; b < bitsSet; b++ {
			mask |= 1 << (w - 1 - uint(b))
		}
		z.val[length-1] |= mask
	}

	return z
}
