// Package audio turns game cues into synthesized sound through gopxl/beep.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player plays game cues.
type Player interface {
	Play(c core.Cue)
	Close()
}

// Nop discards every cue. Used over SSH, with --mute, or when no audio
// device is available.
type Nop struct{}

func (Nop) Play(core.Cue) {}
func (Nop) Close()        {}

// Volumes are linear gains per sound.
type Volumes struct {
	Music     float64
	Move      float64
	Eat       float64
	HighScore float64
	GameOver  float64
}

// VolumesFrom reads the gains from the audio config.
func VolumesFrom(cfg config.AudioConfig) Volumes {
	return Volumes{
		Music:     cfg.MusicVolume,
		Move:      cfg.Effects.Move,
		Eat:       cfg.Effects.Eat,
		HighScore: cfg.Effects.HighScore,
		GameOver:  cfg.Effects.GameOver,
	}
}

// BeepPlayer mixes cue sounds and a looping background track.
// Music starts paused; mute silences it without stopping it.
type BeepPlayer struct {
	mu       sync.Mutex
	rate     beep.SampleRate
	volumes  Volumes
	mixer    *beep.Mixer
	music    *beep.Ctrl
	musicVol *effects.Volume
	muted    bool
	closed   bool
	locking  bool // whether the speaker is pulling from the mixer
}

// NewBeepPlayer initializes the speaker and starts mixing.
func NewBeepPlayer(vol Volumes) (*BeepPlayer, error) {
	p := newBeepPlayer(vol, sampleRate)

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.locking = true
	return p, nil
}

// newBeepPlayer builds the mixer graph without touching the speaker.
func newBeepPlayer(vol Volumes, rate beep.SampleRate) *BeepPlayer {
	p := &BeepPlayer{
		rate:    rate,
		volumes: vol,
		mixer:   &beep.Mixer{},
	}
	p.music = &beep.Ctrl{Streamer: NewMusic(rate), Paused: true}
	p.musicVol = newVolume(p.music, vol.Music)
	p.mixer.Add(p.musicVol)
	return p
}

// Play reacts to one cue.
func (p *BeepPlayer) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.lock()
	defer p.unlock()

	switch c {
	case core.CueMove:
		p.mixer.Add(MoveSound(p.rate, p.volumes.Move))
	case core.CueEat:
		p.mixer.Add(EatSound(p.rate, p.volumes.Eat))
	case core.CueHighScore:
		p.mixer.Add(HighScoreSound(p.rate, p.volumes.HighScore))
	case core.CueGameOver:
		p.mixer.Add(GameOverSound(p.rate, p.volumes.GameOver))
	case core.CueMusicStart:
		p.music.Paused = false
	case core.CueMusicStop:
		p.music.Paused = true
	case core.CueMusicMute:
		p.muted = true
		p.musicVol.Silent = true
	case core.CueMusicUnmute:
		p.muted = false
		p.musicVol.Silent = p.volumes.Music <= 0
	}
}

// Muted reports whether the music is muted.
func (p *BeepPlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// MusicPlaying reports whether the background loop is running.
func (p *BeepPlayer) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lock()
	defer p.unlock()
	return !p.music.Paused
}

// Close stops all sounds.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.lock()
	p.music.Paused = true
	p.mixer.Clear()
	p.unlock()

	if p.locking {
		speaker.Clear()
	}
	p.closed = true
}

// lock guards the mixer graph against the speaker goroutine.
func (p *BeepPlayer) lock() {
	if p.locking {
		speaker.Lock()
	}
}

func (p *BeepPlayer) unlock() {
	if p.locking {
		speaker.Unlock()
	}
}
