// Package audio plays the game's sound effects. WAV files are used when
// present; otherwise short synthesized beeps keep the game audible
// without assets.
package audio

import (
	"bytes"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// Mixer owns the audio context and the loaded effect players.
type Mixer struct {
	ctx    *audio.Context
	volume float64

	shoot     *audio.Player
	explosion *audio.Player
}

// NewMixer creates the audio context and loads the effects from assetDir,
// falling back to synthesized beeps for anything missing.
func NewMixer(assetDir string) *Mixer {
	m := &Mixer{
		ctx:    audio.NewContext(sampleRate),
		volume: 1.0,
	}

	if p, err := loadWav(m.ctx, assetDir+"/shoot.wav"); err == nil {
		m.shoot = p
	} else {
		m.shoot = newBeep(m.ctx, 950, 0.07)
	}
	if p, err := loadWav(m.ctx, assetDir+"/explosion.wav"); err == nil {
		m.explosion = p
	} else {
		m.explosion = newBeep(m.ctx, 240, 0.12)
	}

	return m
}

// SetVolume sets the master volume, clamped to 0..1.
func (m *Mixer) SetVolume(v float64) {
	m.volume = math.Min(1, math.Max(0, v))
}

// Volume returns the master volume.
func (m *Mixer) Volume() float64 {
	return m.volume
}

// PlayShoot plays the turret burst effect.
func (m *Mixer) PlayShoot() {
	m.play(m.shoot)
}

// PlayExplosion plays the drone explosion effect.
func (m *Mixer) PlayExplosion() {
	m.play(m.explosion)
}

func (m *Mixer) play(p *audio.Player) {
	if p == nil {
		return
	}
	p.SetVolume(m.volume)
	_ = p.Rewind()
	p.Play()
}

func loadWav(ctx *audio.Context, path string) (*audio.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := wav.DecodeWithoutResampling(f)
	if err != nil {
		return nil, err
	}
	return audio.NewPlayer(ctx, s)
}

// tiny wrapper so bytes.Reader acts like a closable stream
type readSeekNopCloser struct{ *bytes.Reader }

func (r *readSeekNopCloser) Close() error { return nil }

// newBeep synthesizes a short sine tone.
func newBeep(ctx *audio.Context, freq float64, durSec float64) *audio.Player {
	n := int(float64(sampleRate) * durSec)
	pcm := make([]byte, n*2) // 16-bit mono
	amp := 0.35
	for i := 0; i < n; i++ {
		v := math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
		s := int16(v * amp * 32767)
		pcm[2*i] = byte(s)
		pcm[2*i+1] = byte(s >> 8)
	}
	r := &readSeekNopCloser{bytes.NewReader(pcm)}
	p, _ := audio.NewPlayer(ctx, r)
	return p
}
