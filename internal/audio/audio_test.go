package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const testRate = beep.SampleRate(8000)

// drain streams s to exhaustion and returns every sample.
func drain(t *testing.T, s beep.Streamer, limit int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("streamer did not drain within %d samples", limit)
	return nil
}

func TestOscillatorLength(t *testing.T) {
	d := 100 * time.Millisecond
	samples := drain(t, NewOscillator(440, 440, d, WaveSine, testRate), 10000)

	if len(samples) != testRate.N(d) {
		t.Errorf("streamed %d samples, want %d", len(samples), testRate.N(d))
	}
	for i, s := range samples {
		if math.Abs(s[0]) > 1 || s[0] != s[1] {
			t.Fatalf("sample %d = %v, want mono in [-1, 1]", i, s)
		}
	}
}

func TestWaveShapes(t *testing.T) {
	tests := []struct {
		w     WaveType
		phase float64
		want  float64
	}{
		{WaveSine, 0.25, 1},
		{WaveSquare, 0.1, 1},
		{WaveSquare, 0.6, -1},
		{WaveTriangle, 0, 1},
		{WaveTriangle, 0.5, -1},
	}

	for _, tt := range tests {
		if got := wave(tt.w, tt.phase); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("wave(%v, %v) = %v, want %v", tt.w, tt.phase, got, tt.want)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, 0, d, WaveSquare, testRate) // constant +1
	samples := drain(t, NewEnvelope(osc, d, 10*time.Millisecond, 20*time.Millisecond, testRate), 10000)

	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 (attack)", samples[0][0])
	}
	if mid := samples[len(samples)/2][0]; mid != 1 {
		t.Errorf("sustain sample = %v, want 1", mid)
	}
	if last := samples[len(samples)-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("last sample = %v, want near 0 (release)", last)
	}
}

func TestCueSoundsDrain(t *testing.T) {
	sounds := map[string]beep.Streamer{
		"move":       MoveSound(testRate, 0.5),
		"eat":        EatSound(testRate, 0.8),
		"high_score": HighScoreSound(testRate, 0.15),
		"game_over":  GameOverSound(testRate, 0.2),
	}

	for name, s := range sounds {
		t.Run(name, func(t *testing.T) {
			samples := drain(t, s, testRate.N(2*time.Second))
			if len(samples) == 0 {
				t.Error("sound produced no samples")
			}
		})
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	v := newVolume(NewMusic(testRate), 0)
	if !v.Silent {
		t.Error("zero gain should be silent")
	}
	if v := newVolume(NewMusic(testRate), 1); v.Silent || v.Volume != 0 {
		t.Errorf("unit gain = %+v, want audible at 0 dB", v)
	}
}

func TestMusicLoopsForever(t *testing.T) {
	m := NewMusic(testRate)
	buf := make([][2]float64, 1024)
	for range 50 {
		n, ok := m.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatal("music should never drain")
		}
	}
}

func TestBeepPlayerCues(t *testing.T) {
	p := newBeepPlayer(VolumesFrom(config.DefaultSnakeConfig().Audio), testRate)

	if p.MusicPlaying() {
		t.Error("music should start paused")
	}

	p.Play(core.CueMusicStart)
	if !p.MusicPlaying() {
		t.Error("music should play after start cue")
	}

	p.Play(core.CueMusicMute)
	if !p.Muted() || !p.musicVol.Silent {
		t.Error("mute should silence the music")
	}
	p.Play(core.CueMusicUnmute)
	if p.Muted() || p.musicVol.Silent {
		t.Error("unmute should restore the music")
	}

	p.Play(core.CueEat)
	if p.mixer.Len() != 2 {
		t.Fatalf("mixer has %d streamers, want music + eat", p.mixer.Len())
	}

	// Pull audio until the effect drains from the mixer.
	buf := make([][2]float64, 512)
	for range 20 {
		p.mixer.Stream(buf)
	}
	if p.mixer.Len() != 1 {
		t.Errorf("finished effect should leave the mixer, have %d streamers", p.mixer.Len())
	}

	p.Play(core.CueMusicStop)
	if p.MusicPlaying() {
		t.Error("music should pause on stop cue")
	}
}

func TestBeepPlayerClose(t *testing.T) {
	p := newBeepPlayer(Volumes{Music: 0.1, Move: 0.5}, testRate)
	p.Close()
	p.Close()

	p.Play(core.CueMove)
	if p.mixer.Len() != 0 {
		t.Errorf("closed player should ignore cues, mixer has %d", p.mixer.Len())
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	for c := core.CueMove; c <= core.CueMusicUnmute; c++ {
		p.Play(c)
	}
	p.Close()
}
