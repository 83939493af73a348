package bigint

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/bigint/internal/bigrand"
)

func TestGenRandomFixedHighBitsForcesNegative(t *testing.T) {
	mock := &bigrand.MockSampler{Queue: []uint64{0x0000000000000000}}
	z := Zero[uint32]().GenRandomFrom(1, 32, mock)

	require.Equal(t, 1, z.Length(), "spew dump on failure: %s", spew.Sdump(z.Data()))
	assert.True(t, z.Sign() < 0, "fixed == W must force the sign bit; got %s", z.String())
}

func TestGenRandomSetsRequestedLength(t *testing.T) {
	mock := &bigrand.MockSampler{Queue: []uint64{1, 2, 3, 4}}
	z := Zero[uint8]().GenRandomFrom(4, 0, mock)

	assert.Equal(t, 4, z.Length(), "spew dump: %s", spew.Sdump(z.Data()))
	assert.Equal(t, 1, mock.Calls(), "8 limbs of uint8 fit in a single 64-bit draw")
}

func TestGenRandomNoFixedBitsLeavesSignFromData(t *testing.T) {
	mock := &bigrand.MockSampler{Queue: []uint64{0x7f}}
	z := Zero[uint8]().GenRandomFrom(1, 0, mock)

	assert.False(t, z.Sign() < 0, "top bit unset should stay non-negative, got %s", z.String())
}
