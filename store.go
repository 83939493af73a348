package bigint

import (
	"github.com/agbru/bigint/internal/bigconfig"
	"github.com/agbru/bigint/internal/bigerrors"
)

// maxCap is invariant 1's ceiling: capacity never exceeds 2^63.
const maxCap = 1 << 62 // one bit short of 2^63, which itself overflows a 64-bit Go int

// resize reallocates z's backing buffer to exactly newCap limbs (which
// must already be a power of two), preserving existing limb values and
// zero-filling any newly added tail. It is a no-op if z already has
// that capacity.
func (z *Int[L]) resize(newCap int) {
	if newCap == len(z.val) {
		return
	}
	if newCap > maxCap {
		panic(&bigerrors.AllocationError{Requested: newCap, Capacity: len(z.val)})
	}
	defer bigerrors.WrapPanic(newCap, len(z.val))
	nv := make([]L, newCap)
	n := newCap
	if n > len(z.val) {
		n = len(z.val)
	}
	copy(nv, z.val[:n])
	z.val = nv
	if z.ln > newCap {
		z.ln = newCap
	}
}

// autoExpand grows z's capacity, if needed, to the smallest power of two
// that accommodates target limbs.
func (z *Int[L]) autoExpand(target int) {
	if target <= len(z.val) {
		return
	}
	z.resize(nextPow2(target))
}

// autoShrink halves capacity while utilisation stays below one quarter,
// never going below bigconfig.MinCapacity.
func (z *Int[L]) autoShrink() {
	for len(z.val) > bigconfig.MinCapacity && z.ln <= len(z.val)/4 {
		z.resize(len(z.val) / 2)
	}
}

// fillLimb returns the limb value used to sign-extend z: all-ones if z
// is currently negative, zero otherwise.
func (z *Int[L]) fillLimb() L {
	if z.signed && z.isNegative() {
		return allOnes[L]()
	}
	return 0
}

// isNegative reports the sign of z per the top bit of its top limb.
// Unsigned-mode values are always treated as non-negative.
func (z *Int[L]) isNegative() bool {
	if !z.signed {
		return false
	}
	return z.val[z.ln-1]&topBit[L]() != 0
}

// setLen expands or contracts the meaningful length to newLen,
// reallocating only if newLen exceeds the current capacity. When
// preserveSign is true, newly exposed limbs (on growth) are filled with
// the sign-extension limb; limbs beyond the new length are always
// zeroed per invariant 3.
func (z *Int[L]) setLen(newLen int, preserveSign bool) {
	if newLen < 1 {
		newLen = 1
	}
	fill := L(0)
	if preserveSign {
		fill = z.fillLimb()
	}
	if newLen > len(z.val) {
		z.autoExpand(newLen)
	}
	if newLen > z.ln {
		for i := z.ln; i < newLen; i++ {
			z.val[i] = fill
		}
	} else {
		for i := newLen; i < len(z.val); i++ {
			z.val[i] = 0
		}
	}
	z.ln = newLen
}

// shrinkLen removes redundant sign-extension limbs from the top of z,
// restoring invariant 2, then zeroes the now-unused tail and applies the
// capacity shrink policy.
func (z *Int[L]) shrinkLen() {
	for z.ln > 1 {
		top := z.val[z.ln-1]
		neg := z.signed && z.val[z.ln-2]&topBit[L]() != 0
		var redundant bool
		if top == 0 && !neg {
			redundant = true
		} else if top == allOnes[L]() && neg {
			redundant = true
		}
		if !redundant {
			break
		}
		z.val[z.ln-1] = 0
		z.ln--
	}
	for i := z.ln; i < len(z.val); i++ {
		z.val[i] = 0
	}
	z.autoShrink()
}
