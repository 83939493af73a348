// See fft.go for the convolution entry point and pool.go for the
// sync.Pool-backed buffer reuse strategy.
package limbfft
