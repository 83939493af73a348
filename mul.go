package bigint

import (
	"github.com/agbru/bigint/internal/biglog"
	"github.com/agbru/bigint/internal/bigconfig"
	"github.com/agbru/bigint/internal/bigmetrics"
	"github.com/agbru/bigint/internal/limbfft"
)

// magnitude returns x's absolute value as little-endian limbs, plus
// whether x was negative. The limbs are those of the normalized value,
// so a zero top limb that pads the sign bit is kept, not trimmed.
func (x *Int[L]) magnitude() (mag []L, neg bool) {
	neg = x.signed && x.isNegative()
	if !neg {
		mag = make([]L, x.ln)
		copy(mag, x.val[:x.ln])
		return mag, false
	}
	abs := Zero[L]().Abs(x)
	mag = make([]L, abs.ln)
	copy(mag, abs.val[:abs.ln])
	return mag, true
}

// setMagnitude installs a non-negative magnitude into z, padding with an
// extra zero limb if the top bit would otherwise read as a sign bit,
// then negates in place if neg is set. A zero magnitude is never
// negated — there is no negative zero to produce, regardless of which
// operand signs combined to produce it.
func (z *Int[L]) setMagnitude(mag []L, neg bool) *Int[L] {
	for len(mag) > 1 && mag[len(mag)-1] == 0 {
		mag = mag[:len(mag)-1]
	}
	if len(mag) == 1 && mag[0] == 0 {
		neg = false
	}
	total := len(mag)
	if mag[total-1]&topBit[L]() != 0 {
		total++
	}
	z.resize(nextPow2(total))
	copy(z.val, mag)
	for i := len(mag); i < len(z.val); i++ {
		z.val[i] = 0
	}
	z.ln = total
	z.signed = true
	if neg {
		tmp := z.Clone()
		z.Neg(tmp)
	}
	z.shrinkLen()
	return z
}

// plainMulMagnitude computes a*b over non-negative base-2^W magnitudes
// with the classical O(len_a*len_b) schoolbook algorithm and a 2W-wide
// accumulator per column.
func plainMulMagnitude[L Limb](a, b []L) []L {
	w := uint(width[L]())
	mask := uint64(1)<<w - 1
	out := make([]uint64, len(a)+len(b))
	for i, av := range a {
		if av == 0 {
			continue
		}
		var carry uint64
		for j, bv := range b {
			v := out[i+j] + uint64(av)*uint64(bv) + carry
			out[i+j] = v & mask
			carry = v >> w
		}
		k := i + len(b)
		for carry > 0 {
			v := out[k] + carry
			out[k] = v & mask
			carry = v >> w
			k++
		}
	}
	limbs := make([]L, len(out))
	for i, v := range out {
		limbs[i] = L(v)
	}
	for len(limbs) > 1 && limbs[len(limbs)-1] == 0 {
		limbs = limbs[:len(limbs)-1]
	}
	return limbs
}

// fftMulMagnitude computes a*b via complex-double FFT convolution,
// delegating the transform itself to internal/limbfft. Precondition
// (enforced by the caller, Mul): W <= 16.
func fftMulMagnitude[L Limb](a, b []L) []L {
	ua := make([]uint64, len(a))
	for i, v := range a {
		ua[i] = uint64(v)
	}
	ub := make([]uint64, len(b))
	for i, v := range b {
		ub[i] = uint64(v)
	}
	prod := limbfft.Convolve(ua, ub, width[L]())
	limbs := make([]L, len(prod))
	for i, v := range prod {
		limbs[i] = L(v)
	}
	return limbs
}

// PlainMul sets z = x*y using only the schoolbook algorithm, bypassing
// dispatch. It exists to let tests pin down multiplication-dispatch
// consistency against Mul and against FFTMul.
func (z *Int[L]) PlainMul(x, y *Int[L]) *Int[L] {
	magX, negX := x.magnitude()
	magY, negY := y.magnitude()
	return z.setMagnitude(plainMulMagnitude(magX, magY), negX != negY)
}

// FFTMul sets z = x*y using only the FFT convolution path, bypassing
// dispatch. Defined only for W <= 16; callers at W = 32 should use
// PlainMul or Mul, which never routes there.
func (z *Int[L]) FFTMul(x, y *Int[L]) *Int[L] {
	magX, negX := x.magnitude()
	magY, negY := y.magnitude()
	return z.setMagnitude(fftMulMagnitude(magX, magY), negX != negY)
}

// Mul sets z = x*y, dispatching between a single-limb fast path,
// schoolbook multiplication, and FFT convolution by operand size, and
// returns z. FFT is never selected at W = 32 (its rounding error budget
// assumes W <= 16).
func (z *Int[L]) Mul(x, y *Int[L]) *Int[L] {
	magX, negX := x.magnitude()
	magY, negY := y.magnitude()
	neg := negX != negY

	switch {
	case len(magX) == 1 || len(magY) == 1:
		logger.Debug("mul dispatch", biglog.String("algorithm", "schoolbook"), biglog.String("reason", "single-limb operand"))
		bigmetrics.ObserveMul("schoolbook")
		return z.setMagnitude(plainMulMagnitude(magX, magY), neg)
	case width[L]() > 16 || min(len(magX), len(magY)) < bigconfig.FFTThreshold:
		logger.Debug("mul dispatch", biglog.String("algorithm", "schoolbook"))
		bigmetrics.ObserveMul("schoolbook")
		return z.setMagnitude(plainMulMagnitude(magX, magY), neg)
	default:
		logger.Debug("mul dispatch", biglog.String("algorithm", "fft"))
		bigmetrics.ObserveMul("fft")
		return z.setMagnitude(fftMulMagnitude(magX, magY), neg)
	}
}
