package signal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-audio/wav"
)

var (
	ErrInvalidWAV = errors.New("not a valid wav file")
	ErrNoSamples  = errors.New("no samples")
)

// Track is a mono 16-bit recording.
type Track struct {
	Signal     *Signal16
	SampleRate int
	Channels   int // channels in the source file
	BitDepth   int // bit depth in the source file
}

// Duration is the length of the track.
func (t *Track) Duration() time.Duration {
	if t.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(t.Signal.Len()) / float64(t.SampleRate) * float64(time.Second))
}

// LoadWAV reads the first channel of a PCM wav file.
func LoadWAV(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wav file: %w", err)
	}
	defer f.Close()

	return DecodeWAV(f)
}

// DecodeWAV decodes the first channel of a PCM wav stream and rescales it to
// 16 bits.
func DecodeWAV(r io.ReadSeeker) (*Track, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, ErrInvalidWAV
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding pcm data: %w", err)
	}

	channels := max(buf.Format.NumChannels, 1)
	frames := len(buf.Data) / channels
	if frames == 0 {
		return nil, ErrNoSamples
	}

	s := NewSignal16(frames)
	for i := range frames {
		s.samples[i] = to16(buf.Data[i*channels], buf.SourceBitDepth)
	}

	return &Track{
		Signal:     s,
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
		BitDepth:   buf.SourceBitDepth,
	}, nil
}

// to16 rescales a decoded sample. 8-bit wav data is unsigned.
func to16(v, bitDepth int) int16 {
	switch {
	case bitDepth == 8:
		return int16((v - 128) << 8)
	case bitDepth > 16:
		return int16(v >> (bitDepth - 16))
	}
	return int16(v)
}
