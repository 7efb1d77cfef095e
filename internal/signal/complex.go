package signal

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// ComplexSignal is a fixed-length frame with separate real and imaginary
// parts. The transform plan is created once per length and reused.
type ComplexSignal struct {
	Re []float64
	Im []float64

	fft   *fourier.FFT
	coeff []complex128
}

func NewComplexSignal(n int) *ComplexSignal {
	n = max(n, 1)
	return &ComplexSignal{
		Re:    make([]float64, n),
		Im:    make([]float64, n),
		fft:   fourier.NewFFT(n),
		coeff: make([]complex128, n/2+1),
	}
}

func (c *ComplexSignal) Len() int {
	return len(c.Re)
}

// Reset zeroes both parts.
func (c *ComplexSignal) Reset() {
	clear(c.Re)
	clear(c.Im)
}

// RealFFT transforms the real part in place, ignoring Im on input. The full
// spectrum is written back; bins above n/2 are the conjugate mirror of the
// lower half. With normalize the coefficients are divided by n.
func (c *ComplexSignal) RealFFT(normalize bool) {
	n := len(c.Re)
	c.coeff = c.fft.Coefficients(c.coeff, c.Re)

	scale := 1.0
	if normalize {
		scale = 1 / float64(n)
	}

	for k, v := range c.coeff {
		c.Re[k] = real(v) * scale
		c.Im[k] = imag(v) * scale
	}
	for k := len(c.coeff); k < n; k++ {
		c.Re[k] = c.Re[n-k]
		c.Im[k] = -c.Im[n-k]
	}
}

// Power returns re^2 + im^2 of bin k.
func (c *ComplexSignal) Power(k int) float64 {
	return c.Re[k]*c.Re[k] + c.Im[k]*c.Im[k]
}
