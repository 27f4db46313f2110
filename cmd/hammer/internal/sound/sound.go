// Package sound plays a short strike tone when a row lands.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate     = beep.SampleRate(44100)
	strikeDuration = 80 * time.Millisecond
	baseFrequency  = 440.0
)

// Striker mixes strike tones into the speaker. The zero value is unusable;
// call New. All methods are no-ops until Initialize succeeds.
type Striker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// New creates a striker with an empty mixer.
func New() *Striker {
	return &Striker{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device. Calling it twice is a no-op.
func (s *Striker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Strike queues the tone for a row. Lower rows ring lower.
func (s *Striker) Strike(node, nodes int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	tone, err := Tone(sampleRate, Frequency(node, nodes))
	if err != nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(tone)
	speaker.Unlock()
}

// Close silences the mixer.
func (s *Striker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Frequency maps a row to a pitch on a pentatonic-ish ladder: row 0 is an
// octave above the last row.
func Frequency(node, nodes int) float64 {
	if nodes <= 1 {
		return baseFrequency * 2
	}
	t := 1 - float64(node)/float64(nodes-1)
	return baseFrequency * math.Pow(2, t)
}

// Tone returns a finite sine burst with an exponential decay.
func Tone(sr beep.SampleRate, freq float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	n := sr.N(strikeDuration)
	return &decay{src: beep.Take(n, sine), total: n}, nil
}

// decay scales its source by an envelope falling from 0.4 to near zero.
type decay struct {
	src   beep.Streamer
	pos   int
	total int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.src.Stream(samples)
	for i := 0; i < n; i++ {
		env := 0.4 * math.Exp(-5*float64(d.pos)/float64(d.total))
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error {
	return d.src.Err()
}
