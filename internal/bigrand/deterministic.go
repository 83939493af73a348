package bigrand

import "math/rand/v2"

// Deterministic returns a Sampler seeded from the two given values, built
// on math/rand/v2's ChaCha8 source. It gives tests and benchmarks a
// reproducible random fill without touching the process-wide CSPRNG.
func Deterministic(seed1, seed2 uint64) Sampler {
	var seed [32]byte
	for i := 0; i < 8; i++ {
		seed[i] = byte(seed1 >> (8 * i))
		seed[i+8] = byte(seed2 >> (8 * i))
	}
	return &deterministic{rand.New(rand.NewChaCha8(seed))}
}

type deterministic struct {
	r *rand.Rand
}

func (d *deterministic) Fill(p []byte) {
	for i := range p {
		p[i] = byte(d.r.Uint64())
	}
}

func (d *deterministic) Uint64() uint64 {
	return d.r.Uint64()
}
