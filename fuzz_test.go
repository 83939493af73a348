package bigint

import "testing"

func FuzzParseFormatRoundTrip(f *testing.F) {
	seeds := []string{"0", "-1", "12345", "-999999999999", "0xff", "-0b1010", "010"}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		a := Parse[uint32](s, 0)
		roundTripped := Parse[uint32](a.String(), 0)
		if a.Cmp(roundTripped) != 0 {
			t.Fatalf("parse(%q) = %s, but round-trip through String() gave %s", s, a.String(), roundTripped.String())
		}
	})
}

func FuzzMulDispatchAgreement(f *testing.F) {
	f.Add(int64(12345), int64(67890))
	f.Add(int64(-1), int64(1))
	f.Fuzz(func(t *testing.T, av, bv int64) {
		a, b := NewInt[uint16](av), NewInt[uint16](bv)
		plain := Zero[uint16]().PlainMul(a, b)
		fft := Zero[uint16]().FFTMul(a, b)
		if plain.Cmp(fft) != 0 {
			t.Fatalf("PlainMul(%d,%d)=%s disagrees with FFTMul=%s", av, bv, plain.String(), fft.String())
		}
	})
}
