package bigint

import (
	"testing"

	"github.com/agbru/bigint/internal/bigrand"
)

func TestMultiplicationScenario(t *testing.T) {
	a := Parse[uint32]("12345678901234567890", 10)
	b := Parse[uint32]("98765432109876543210", 10)
	got := Zero[uint32]().Mul(a, b)
	want := "1219326311370217952237463801111263526900"
	if got.String() != want {
		t.Errorf("product = %s, want %s", got.String(), want)
	}
}

func TestHexIncrementOverflowScenario(t *testing.T) {
	a := Parse[uint32]("0xffffffffffffffff", 0)
	got := Zero[uint32]().AddLimb(a, 1)
	want := Parse[uint32]("0x10000000000000000", 0)
	if got.Cmp(want) != 0 {
		t.Errorf("0xffffffffffffffff + 1 = %s, want %s", got.String(), want.String())
	}
}

func TestTruncatedDivisionScenario(t *testing.T) {
	a := NewInt[uint32](-7)
	b := NewInt[uint32](3)
	q := Zero[uint32]().Quo(a, b)
	r := Zero[uint32]().Rem(a, b)
	if q.Cmp(NewInt[uint32](-2)) != 0 {
		t.Errorf("-7 / 3 = %s, want -2", q.String())
	}
	if r.Cmp(NewInt[uint32](-1)) != 0 {
		t.Errorf("-7 %% 3 = %s, want -1", r.String())
	}
}

func TestShiftScenario(t *testing.T) {
	one := NewInt[uint32](1)
	shifted := Zero[uint32]().Lsh(one, 128)
	got := shifted.Clone()
	got.Dec()
	want := Parse[uint32]("340282366920938463463374607431768211455", 10)
	if got.Cmp(want) != 0 {
		t.Errorf("(1 << 128) - 1 = %s, want %s", got.String(), want.String())
	}
}

func TestBitwiseScenario(t *testing.T) {
	a := Parse[uint32]("0b1010", 0)
	b := Parse[uint32]("0b0101", 0)
	or := Zero[uint32]().Or(a, b)
	and := Zero[uint32]().And(a, b)
	if or.Cmp(Parse[uint32]("0b1111", 0)) != 0 {
		t.Errorf("1010 | 0101 = %s, want 1111", or.String())
	}
	if and.Sign() != 0 {
		t.Errorf("1010 & 0101 = %s, want 0", and.String())
	}
}

func TestFFTMatchesSchoolbookAtScale(t *testing.T) {
	src := bigrand.Deterministic(1, 2)
	a := Zero[uint16]().GenRandomFrom(1024, 0, src)
	b := Zero[uint16]().GenRandomFrom(1024, 0, src)

	plain := Zero[uint16]().PlainMul(a, b)
	fft := Zero[uint16]().FFTMul(a, b)
	if plain.Cmp(fft) != 0 {
		t.Errorf("PlainMul and FFTMul disagree at 1024 limbs (W=16)")
	}
}
