package bigint

// Add sets z = x + y using classical ripple-carry addition over a
// 64-bit accumulator (wide enough for any supported limb width doubled)
// and returns z.
func (z *Int[L]) Add(x, y *Int[L]) *Int[L] {
	w := uint(width[L]())
	n := x.ln
	if y.ln > n {
		n = y.ln
	}
	n++ // room for a carry that changes the sign
	fx, fy := x.fillLimb(), y.fillLimb()
	tmp := make([]L, n)
	var carry uint64
	for i := 0; i < n; i++ {
		va, vb := fx, fy
		if i < x.ln {
			va = x.val[i]
		}
		if i < y.ln {
			vb = y.val[i]
		}
		sum := uint64(va) + uint64(vb) + carry
		tmp[i] = L(sum)
		carry = sum >> w
	}
	z.resize(nextPow2(n))
	copy(z.val, tmp)
	for i := n; i < len(z.val); i++ {
		z.val[i] = 0
	}
	z.ln = n
	z.signed = true
	z.shrinkLen()
	return z
}

// AddLimb sets z = x + limb, treating limb as a non-negative single-limb
// value, and returns z. y is built unsigned so a limb with its top bit
// set (e.g. 200 for a uint8 instance) is never read back as negative by
// Add's sign-extension fill.
func (z *Int[L]) AddLimb(x *Int[L], limb L) *Int[L] {
	y := Zero[L]()
	y.val[0] = limb
	y.signed = false
	return z.Add(x, y)
}

// Sub sets z = x - y and returns z.
func (z *Int[L]) Sub(x, y *Int[L]) *Int[L] {
	ny := Zero[L]().Neg(y)
	return z.Add(x, ny)
}

// Neg sets z = -x by inverting every limb of x and incrementing by one,
// then returns z. The most negative single-limb value (sole limb is the
// sign-bit-only pattern) widens len by one; Inc's fixed ln+1 scratch
// buffer accounts for that growth directly rather than inferring it
// from carry propagation.
func (z *Int[L]) Neg(x *Int[L]) *Int[L] {
	z.Not(x)
	return z.Inc()
}

// Abs sets z = |x| and returns z.
func (z *Int[L]) Abs(x *Int[L]) *Int[L] {
	if x.signed && x.isNegative() {
		return z.Neg(x)
	}
	return z.Set(x)
}

// Inc adds one to z in place and returns z. Like Add, it computes into a
// fixed ln+1-limb scratch buffer extended with z's pre-operation
// sign-extension fill, so a carry that merely flips the top bit (with no
// actual overflow past the old length) still widens correctly instead of
// being read back as a sign change on stale data.
func (z *Int[L]) Inc() *Int[L] {
	w := uint(width[L]())
	n := z.ln + 1
	fill := z.fillLimb()
	tmp := make([]L, n)
	carry := uint64(1)
	for i := 0; i < n; i++ {
		v := fill
		if i < z.ln {
			v = z.val[i]
		}
		sum := uint64(v) + carry
		tmp[i] = L(sum)
		carry = sum >> w
	}
	z.resize(nextPow2(n))
	copy(z.val, tmp)
	for i := n; i < len(z.val); i++ {
		z.val[i] = 0
	}
	z.ln = n
	z.shrinkLen()
	return z
}

// Dec subtracts one from z in place and returns z, mirroring Inc's fixed
// ln+1-limb scratch buffer so a borrow that merely flips the top bit
// widens correctly from z's pre-operation sign fill.
func (z *Int[L]) Dec() *Int[L] {
	w := uint(width[L]())
	n := z.ln + 1
	fill := z.fillLimb()
	tmp := make([]L, n)
	borrow := uint64(1)
	for i := 0; i < n; i++ {
		v := fill
		if i < z.ln {
			v = z.val[i]
		}
		cur := uint64(v)
		if cur >= borrow {
			tmp[i] = L(cur - borrow)
			borrow = 0
		} else {
			tmp[i] = L(cur - borrow + (1 << w))
			borrow = 1
		}
	}
	z.resize(nextPow2(n))
	copy(z.val, tmp)
	for i := n; i < len(z.val); i++ {
		z.val[i] = 0
	}
	z.ln = n
	z.shrinkLen()
	return z
}
