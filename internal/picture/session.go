package picture

import (
	"image/color"

	"github.com/roman-kulish/vocal-plot/internal/signal"
	"github.com/roman-kulish/vocal-plot/internal/spectrogram"
)

const (
	f0MinHz = 0
	f0MaxHz = 600

	// peak slope range of the voice quality estimate
	voiceQualityMin = -1.0
	voiceQualityMax = 0.0
)

var (
	f0Color           = color.RGBA{R: 255, G: 128, B: 0, A: 255}
	voiceQualityColor = color.RGBA{R: 128, G: 255, B: 128, A: 255}
)

// Session is the state the pictures of one window share: the track on
// display, the visible sample range, the mark and the overlay curves.
type Session struct {
	Track *signal.Track

	CenterPos    int // sample at the centre of the view
	VisibleRange int // samples across the view
	Mark         int // marked sample, never negative

	F0           spectrogram.Curve
	VoiceQuality spectrogram.Curve

	ShowF0           bool
	ShowVoiceQuality bool
	ShowText         bool
}

// NewSession shows the whole track.
func NewSession(track *signal.Track) *Session {
	n := track.Signal.Len()
	return &Session{
		Track:        track,
		CenterPos:    n / 2,
		VisibleRange: max(n, 1),
		F0: spectrogram.Curve{
			Min:   f0MinHz,
			Max:   f0MaxHz,
			Color: f0Color,
		},
		VoiceQuality: spectrogram.Curve{
			Min:   voiceQualityMin,
			Max:   voiceQualityMax,
			Color: voiceQualityColor,
		},
		ShowF0:           true,
		ShowVoiceQuality: true,
		ShowText:         true,
	}
}

func (s *Session) SampleRate() int {
	return max(s.Track.SampleRate, 1)
}

// View returns the first visible sample and the number of samples shown.
func (s *Session) View() (first, num int) {
	num = max(s.VisibleRange, 1)
	return s.CenterPos - num/2, num
}

// SetView centres the view on [start, start+duration] seconds.
func (s *Session) SetView(start, duration float64) {
	rate := float64(s.SampleRate())
	s.VisibleRange = max(int(duration*rate), 1)
	s.CenterPos = int(start*rate) + s.VisibleRange/2
}

// TimeRange returns the times of the first and last visible samples.
func (s *Session) TimeRange() (start, end float64) {
	first, num := s.View()
	rate := float64(s.SampleRate())
	return float64(first) / rate, float64(first+num-1) / rate
}

// SetMark places the mark, floored at the first sample.
func (s *Session) SetMark(sample int) {
	s.Mark = max(sample, 0)
}
