// Package bigint implements an arbitrary-precision signed integer built
// from scratch on a two's-complement, variable-length limb buffer — it
// does not wrap or delegate to math/big. The limb width is a type
// parameter so callers can trade memory density against arithmetic
// throughput: Int[uint8] packs tightly, Int[uint32] uses the fewest
// limbs per value but always multiplies by schoolbook, since Mul routes
// to the FFT path only at W <= 16.
//
// Every exported method follows math/big's destination-first mutating
// convention: z.Add(x, y) stores x+y into z and returns z, so callers
// can chain calls and control allocation explicitly.
//
// internal/ carries the ambient and domain stack this package wires:
// biglog (structured diagnostics), bigconfig (dispatch tunables),
// bigerrors (the allocation-failure error type), bigrand (the random-fill
// source), bigmetrics (optional Prometheus counters), and limbfft (the
// FFT convolution multiply path).
package bigint
