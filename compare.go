package bigint

// Sign returns -1, 0, or 1 depending on whether z is negative, zero, or
// positive.
func (z *Int[L]) Sign() int {
	if z.ln == 1 && z.val[0] == 0 {
		return 0
	}
	if z.signed && z.isNegative() {
		return -1
	}
	return 1
}

// Bool reports whether z is nonzero.
func (z *Int[L]) Bool() bool {
	return !(z.ln == 1 && z.val[0] == 0)
}

// Cmp performs a three-way comparison, checking sign first (negative
// sorts before non-negative), then length, then limbs from the top
// down, and returns -1, 0, or 1 as z is less than, equal to, or greater
// than y.
func (z *Int[L]) Cmp(y *Int[L]) int {
	negZ := z.signed && z.isNegative()
	negY := y.signed && y.isNegative()
	if negZ != negY {
		if negZ {
			return -1
		}
		return 1
	}
	if z.ln != y.ln {
		if negZ {
			if z.ln > y.ln {
				return -1
			}
			return 1
		}
		if z.ln > y.ln {
			return 1
		}
		return -1
	}
	for i := z.ln - 1; i >= 0; i-- {
		if z.val[i] != y.val[i] {
			if z.val[i] < y.val[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
