package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

func wave(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// oscillator is a finite tone that glides linearly from one frequency to another.
type oscillator struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a tone of the given length. Pass the same frequency
// twice for a steady pitch.
func NewOscillator(from, to float64, duration time.Duration, w WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     w,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := wave(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		freq := o.from + (o.to-o.from)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream by a linear gain.
// math.Log2(0) is -Inf, so a zero gain is made silent instead.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func note(from, to float64, d time.Duration, w WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(from, to, d, w, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// MoveSound is a short tick for an accepted turn.
func MoveSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(note(660, 660, 40*time.Millisecond, WaveTriangle, rate), vol)
}

// EatSound is a rising two-note chirp.
func EatSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(beep.Seq(
		note(880, 880, 50*time.Millisecond, WaveSquare, rate),
		note(1318.51, 1318.51, 70*time.Millisecond, WaveSquare, rate),
	), vol*0.5)
}

// HighScoreSound is a major arpeggio.
func HighScoreSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		parts[i] = note(f, f, 70*time.Millisecond, WaveSquare, rate)
	}
	return newVolume(beep.Seq(parts...), vol)
}

// GameOverSound is a slow falling sweep.
func GameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(note(440, 110, 700*time.Millisecond, WaveSquare, rate), vol)
}

// musicGenerator loops a bass arpeggio forever.
type musicGenerator struct {
	rate     beep.SampleRate
	notes    []float64
	noteLen  int
	position int
	phase    float64
}

// NewMusic creates the background loop.
func NewMusic(rate beep.SampleRate) beep.Streamer {
	return &musicGenerator{
		rate:    rate,
		notes:   []float64{130.81, 196.00, 155.56, 196.00, 116.54, 174.61, 146.83, 174.61},
		noteLen: rate.N(180 * time.Millisecond),
	}
}

func (m *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (m.position / m.noteLen) % len(m.notes)
		inNote := m.position % m.noteLen

		// Pluck: fast decay within each note
		env := math.Exp(-3 * float64(inNote) / float64(m.noteLen))
		val := 0.6 * env * wave(WaveTriangle, m.phase)

		samples[i][0] = val
		samples[i][1] = val

		m.phase += m.notes[idx] / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.position++
	}
	return len(samples), true
}

func (m *musicGenerator) Err() error { return nil }
