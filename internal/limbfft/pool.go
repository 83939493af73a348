// This file provides memory pooling for FFT buffers to reduce GC pressure
// on repeated large multiplications.

package limbfft

import (
	"math/bits"
	"sync"
)

// complexSlicePools pools []complex128 slices by size class. Sizes are
// powers of two from 64 up to 16M entries, which covers the FFT lengths
// a power-of-two-padded convolution ever rounds up to.
var complexSlicePools = [...]sync.Pool{
	{New: func() any { return make([]complex128, 64) }},
	{New: func() any { return make([]complex128, 128) }},
	{New: func() any { return make([]complex128, 256) }},
	{New: func() any { return make([]complex128, 512) }},
	{New: func() any { return make([]complex128, 1024) }},
	{New: func() any { return make([]complex128, 2048) }},
	{New: func() any { return make([]complex128, 4096) }},
	{New: func() any { return make([]complex128, 8192) }},
	{New: func() any { return make([]complex128, 16384) }},
	{New: func() any { return make([]complex128, 32768) }},
	{New: func() any { return make([]complex128, 65536) }},
	{New: func() any { return make([]complex128, 131072) }},
	{New: func() any { return make([]complex128, 262144) }},
	{New: func() any { return make([]complex128, 524288) }},
	{New: func() any { return make([]complex128, 1048576) }},
	{New: func() any { return make([]complex128, 2097152) }},
	{New: func() any { return make([]complex128, 4194304) }},
	{New: func() any { return make([]complex128, 8388608) }},
	{New: func() any { return make([]complex128, 16777216) }},
}

var complexSliceSizes = [...]int{
	64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768, 65536,
	131072, 262144, 524288, 1048576, 2097152, 4194304, 8388608, 16777216,
}

// poolIndex returns the pool index for a given size, or -1 if size
// exceeds the largest pooled class. Every class is an exact power of
// two, so bits.Len locates the class in O(1).
func poolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > complexSliceSizes[len(complexSliceSizes)-1] {
		return -1
	}
	idx := bits.Len(uint(size-1)) - 6
	if idx < 0 {
		idx = 0
	}
	return idx
}

// acquireComplexSlice returns a zeroed []complex128 of exactly size,
// backed by pooled capacity when size fits a size class. Release it with
// releaseComplexSlice, preferably via defer.
func acquireComplexSlice(size int) []complex128 {
	idx := poolIndex(size)
	if idx < 0 {
		return make([]complex128, size)
	}
	slice := complexSlicePools[idx].Get().([]complex128)
	clear(slice)
	return slice[:size]
}

// releaseComplexSlice returns a slice obtained from acquireComplexSlice
// to its pool. Safe to call with nil.
func releaseComplexSlice(slice []complex128) {
	if slice == nil {
		return
	}
	c := cap(slice)
	idx := poolIndex(c)
	if idx >= 0 && complexSliceSizes[idx] == c {
		complexSlicePools[idx].Put(slice[:c])
	}
}
