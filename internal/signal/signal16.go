// Package signal holds the sample containers the plots read from.
package signal

// Signal16 is a ring of 16-bit samples. Indices wrap in both directions, so
// analysis windows may reach before the first or past the last sample.
type Signal16 struct {
	samples []int16
}

func NewSignal16(n int) *Signal16 {
	return &Signal16{samples: make([]int16, max(n, 0))}
}

// FromSamples copies s into a new signal.
func FromSamples(s []int16) *Signal16 {
	out := NewSignal16(len(s))
	copy(out.samples, s)
	return out
}

func (s *Signal16) Len() int {
	return len(s.samples)
}

// At returns the sample at i modulo the length. An empty signal reads as
// silence.
func (s *Signal16) At(i int) int16 {
	n := len(s.samples)
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return s.samples[i]
}

func (s *Signal16) Set(i int, v int16) {
	n := len(s.samples)
	if n == 0 {
		return
	}
	i %= n
	if i < 0 {
		i += n
	}
	s.samples[i] = v
}

// Samples exposes the backing slice.
func (s *Signal16) Samples() []int16 {
	return s.samples
}

// Peak returns the largest absolute sample value.
func (s *Signal16) Peak() int {
	peak := 0
	for _, v := range s.samples {
		a := int(v)
		if a < 0 {
			a = -a
		}
		peak = max(peak, a)
	}
	return peak
}
