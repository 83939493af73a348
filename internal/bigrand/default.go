package bigrand

import (
	dcrrand "github.com/decred/dcrd/crypto/rand"
)

// csprng adapts the package-level default source from
// github.com/decred/dcrd/crypto/rand — a userspace CSPRNG periodically
// reseeded from crypto/rand, safe for concurrent use — to Sampler.
type csprng struct{}

// Default is the production Sampler: every GenRandom call not given an
// explicit Sampler uses this one.
var Default Sampler = csprng{}

func (csprng) Fill(p []byte) {
	dcrrand.Read(p)
}

func (csprng) Uint64() uint64 {
	return dcrrand.Uint64()
}
