package bigint

import (
	"math/bits"

	"github.com/agbru/bigint/internal/biglog"
	"github.com/agbru/bigint/internal/bigconfig"
	"github.com/agbru/bigint/internal/bigmetrics"
)

// trimMagnitude drops redundant leading (most significant) zero limbs,
// always leaving at least one limb.
func trimMagnitude[L Limb](a []L) []L {
	for len(a) > 1 && a[len(a)-1] == 0 {
		a = a[:len(a)-1]
	}
	return a
}

// rshiftMagnitude performs a logical right shift by s bits (0 <= s <
// W) over a non-negative magnitude.
func rshiftMagnitude[L Limb](a []L, s uint) []L {
	w := uint(width[L]())
	if s == 0 {
		out := make([]L, len(a))
		copy(out, a)
		return out
	}
	out := make([]L, len(a))
	for i := 0; i < len(a); i++ {
		lo := a[i] >> s
		var hi L
		if i+1 < len(a) {
			hi = a[i+1] << (w - s)
		}
		out[i] = lo | hi
	}
	return trimMagnitude(out)
}

// basicDivEqMagnitude divides the non-negative magnitude a by the
// single nonzero limb d (the BasicDivEq algorithm): a power-of-two divisor
// takes the arithmetic-shift fast path, otherwise a one-pass long
// division from the top limb down with a W-bit partial remainder. d ==
// 1 is a power of two, so it takes the shift path with a zero shift and
// returns a copy of a.
func basicDivEqMagnitude[L Limb](a []L, d L) (q []L, r L) {
	w := uint(width[L]())
	if d&(d-1) == 0 {
		shift := uint(bits.TrailingZeros32(uint32(d)))
		return rshiftMagnitude(a, shift), a[0] & (d - 1)
	}
	q = make([]L, len(a))
	var rem uint64
	for i := len(a) - 1; i >= 0; i-- {
		cur := rem<<w | uint64(a[i])
		q[i] = L(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return trimMagnitude(q), L(rem)
}

// assembleU64 packs a little-endian magnitude, known to fit within 64
// bits, into a single uint64.
func assembleU64[L Limb](a []L) uint64 {
	w := uint(width[L]())
	var v uint64
	for i := len(a) - 1; i >= 0; i-- {
		v = v<<w | uint64(a[i])
	}
	return v
}

// splitU64 unpacks v into little-endian limbs of L, trimmed.
func splitU64[L Limb](v uint64) []L {
	w := uint(width[L]())
	out := []L{L(v)}
	v >>= w
	for v != 0 {
		out = append(out, L(v))
		v >>= w
	}
	return out
}

// plainDivEqMagnitude is the PlainDivEq fast path: both magnitudes
// fit a 64-bit accumulator, so native division suffices.
func plainDivEqMagnitude[L Limb](a, b []L) (q, r []L) {
	av, bv := assembleU64(a), assembleU64(b)
	return splitU64[L](av / bv), splitU64[L](av % bv)
}

// shiftDigits produces a left-normalized view of a as outLen uint64
// digits shifted left by s < W bits, the virtual shift Knuth D uses to
// set the divisor's top bit.
func shiftDigits[L Limb](a []L, s uint, outLen int) []uint64 {
	w := uint(width[L]())
	mask := uint64(1)<<w - 1
	out := make([]uint64, outLen)
	if s == 0 {
		for i := 0; i < outLen && i < len(a); i++ {
			out[i] = uint64(a[i])
		}
		return out
	}
	for i := 0; i < outLen; i++ {
		var hi, lo uint64
		if i < len(a) {
			hi = uint64(a[i])
		}
		if i >= 1 && i-1 < len(a) {
			lo = uint64(a[i-1])
		}
		out[i] = (hi<<s | lo>>(w-s)) & mask
	}
	return out
}

// unshiftDigits reverses shiftDigits, producing n limbs of L.
func unshiftDigits[L Limb](d []uint64, s uint, n int) []L {
	w := uint(width[L]())
	mask := uint64(1)<<w - 1
	out := make([]L, n)
	if s == 0 {
		for i := 0; i < n; i++ {
			out[i] = L(d[i])
		}
		return out
	}
	for i := 0; i < n; i++ {
		var hi uint64
		if i+1 < len(d) {
			hi = d[i+1]
		}
		out[i] = L((d[i]>>s | hi<<(w-s)) & mask)
	}
	return out
}

// clzInLimb counts leading zero bits of v within a W-bit limb.
func clzInLimb[L Limb](v L) uint {
	w := uint(width[L]())
	if v == 0 {
		return w
	}
	var n uint
	top := topBit[L]()
	for v&top == 0 {
		v <<= 1
		n++
	}
	return n
}

// knuthDivD divides non-negative magnitude a (len m >= n) by non-negative
// magnitude b (len n >= 2), producing quotient and remainder magnitudes.
// twoByOne selects the DivEqAlgB quotient-digit estimate (one division
// of the top three remainder digits by the top two divisor digits, with
// no refinement test); otherwise the classical DivEqAlgA estimate (top
// two remainder digits over the top divisor digit, refined by the
// standard 3-by-2 test) is used.
// Both variants share the same normalization and multiply-subtract
// correction scaffold.
func knuthDivD[L Limb](a, b []L, twoByOne bool) (q, r []L) {
	w := uint(width[L]())
	base := uint64(1) << w
	n := len(b)
	m := len(a)

	s := clzInLimb(b[n-1])
	vn := shiftDigits(b, s, n)
	un := shiftDigits(a, s, m+1)

	qd := make([]uint64, m-n+1)

	for j := m - n; j >= 0; j-- {
		num := un[j+n]*base + un[j+n-1]
		var qhat, rhat uint64
		if twoByOne && n >= 2 {
			den := vn[n-1]*base + vn[n-2]
			if den == 0 {
				den = 1
			}
			qhat = (num*base + un[j+n-2]) / den
			if qhat >= base {
				qhat = base - 1
			}
		} else {
			qhat = num / vn[n-1]
			rhat = num % vn[n-1]
			for n >= 2 && (qhat >= base || qhat*vn[n-2] > rhat*base+un[j+n-2]) {
				qhat--
				rhat += vn[n-1]
				if rhat >= base {
					break
				}
			}
		}

		mulOut := make([]uint64, n+1)
		var c uint64
		for t := 0; t < n; t++ {
			p := qhat*vn[t] + c
			mulOut[t] = p & (base - 1)
			c = p >> w
		}
		mulOut[n] = c

		var borrow int64
		for t := 0; t <= n; t++ {
			d := int64(un[j+t]) - int64(mulOut[t]) - borrow
			if d < 0 {
				d += int64(base)
				borrow = 1
			} else {
				borrow = 0
			}
			un[j+t] = uint64(d)
		}

		if borrow != 0 {
			qhat--
			var c2 uint64
			for t := 0; t < n; t++ {
				sum := un[j+t] + vn[t] + c2
				un[j+t] = sum & (base - 1)
				c2 = sum >> w
			}
			un[j+n] = (un[j+n] + c2) & (base - 1)
		}

		qd[j] = qhat
	}

	q = trimMagnitude(unshiftDigits[L](qd, 0, len(qd)))
	r = trimMagnitude(unshiftDigits[L](un[:n], s, n))
	return q, r
}

// divEqAlgA is the DivEqAlgA Knuth D long division with the 3-by-2
// quotient-digit estimate and normalization shift.
func divEqAlgA[L Limb](a, b []L) (q, r []L) {
	return knuthDivD(a, b, false)
}

// divEqAlgB is the DivEqAlgB estimate variant. It requires W <= 21 so
// its three-digit estimate numerator fits a single 64-bit word; at
// W = 32 it aliases to divEqAlgA, the same rule
// the original implementation expressed as a template specialization.
func divEqAlgB[L Limb](a, b []L) (q, r []L) {
	if width[L]() > 21 {
		return divEqAlgA(a, b)
	}
	return knuthDivD(a, b, true)
}

// QuoRem sets z to x/y and m to x%y (truncated division: remainder
// carries the sign of the dividend, |m| < |y|) and returns (z, m).
// Division by zero is a silent no-op: both z and m are left equal
// to the unchanged dividend x.
func (z *Int[L]) QuoRem(x, y *Int[L], m *Int[L]) (*Int[L], *Int[L]) {
	if !y.Bool() {
		z.Set(x)
		m.Set(x)
		return z, m
	}

	magX, negX := x.magnitude()
	magY, negY := y.magnitude()
	qNeg := negX != negY
	rNeg := negX

	w := width[L]()
	threshold := bigconfig.Div64Threshold

	var qMag, rMag []L
	switch {
	case len(magX)*w <= threshold && len(magY)*w <= threshold:
		qMag, rMag = plainDivEqMagnitude(magX, magY)
		logger.Debug("div dispatch", biglog.String("algorithm", "plain"))
		bigmetrics.ObserveDiv("plain")
	case len(magY) == 1:
		var rLimb L
		qMag, rLimb = basicDivEqMagnitude(magX, magY[0])
		rMag = []L{rLimb}
		logger.Debug("div dispatch", biglog.String("algorithm", "basic"))
		bigmetrics.ObserveDiv("basic")
	case len(magX) < len(magY):
		qMag, rMag = []L{0}, magX
	case width[L]() <= 21:
		qMag, rMag = divEqAlgB(magX, magY)
		logger.Debug("div dispatch", biglog.String("algorithm", "alg_b"))
		bigmetrics.ObserveDiv("alg_b")
	default:
		qMag, rMag = divEqAlgA(magX, magY)
		logger.Debug("div dispatch", biglog.String("algorithm", "alg_a"))
		bigmetrics.ObserveDiv("alg_a")
	}

	// z and m may alias x or y; compute both magnitudes before writing.
	qCopy := append([]L(nil), qMag...)
	rCopy := append([]L(nil), rMag...)
	z.setMagnitude(qCopy, qNeg)
	m.setMagnitude(rCopy, rNeg)
	return z, m
}

// Quo sets z = x/y (truncated) and returns z.
func (z *Int[L]) Quo(x, y *Int[L]) *Int[L] {
	scratch := Zero[L]()
	z.QuoRem(x, y, scratch)
	return z
}

// Rem sets z = x%y (remainder carries the sign of the dividend) and
// returns z.
func (z *Int[L]) Rem(x, y *Int[L]) *Int[L] {
	scratch := Zero[L]()
	scratch.QuoRem(x, y, z)
	return z
}
