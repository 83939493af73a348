// Package bigconfig holds the tunable constants the arithmetic dispatch
// layers read: the schoolbook/FFT multiply crossover, the native-word
// division fast-path gate, and the limb-store auto-shrink floor. Each has
// a static default, overridable once at process start via an environment
// variable.
package bigconfig

// EnvPrefix namespaces every override so it can't collide with an
// embedding application's own environment variables.
const EnvPrefix = "BIGINT_"

var (
	// FFTThreshold is T_fft: the shorter operand's limb length at or
	// above which Mul dispatches to the FFT convolution path instead of
	// schoolbook multiplication.
	FFTThreshold = getEnvInt("FFT_THRESHOLD", 96)

	// Div64Threshold is the len*W bit-width ceiling below which division
	// dispatches to the single-native-word fast path (PlainDivEq) instead
	// of the multi-limb Knuth algorithms.
	Div64Threshold = getEnvInt("DIV64_THRESHOLD", 64)

	// MinCapacity is the smallest power-of-two capacity auto_shrink will
	// ever reduce a limb store to.
	MinCapacity = getEnvInt("MIN_CAPACITY", 4)
)
