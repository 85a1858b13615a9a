// Package audio plays the scene's looping background music. Audio is never
// essential: without a device or a readable track it stays silent.
package audio

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// DefaultVolume is the background music gain.
	DefaultVolume = 0.4

	// ambienceLength is one loop of the generated track.
	ambienceLength = 4 * time.Second
)

// Options selects what the music player does.
type Options struct {
	Path   string  // mp3 file; empty plays the generated ambience
	Volume float64 // linear gain in [0, 1]
	Mute   bool
}

// Music is the background music player.
type Music struct {
	mu      sync.Mutex
	log     *slog.Logger
	ctrl    *beep.Ctrl
	closer  func() error
	playing bool
}

// NewMusic creates a stopped player.
func NewMusic(log *slog.Logger) *Music {
	if log == nil {
		log = slog.Default()
	}
	return &Music{log: log}
}

// Start opens the speaker and begins looping the track. Any failure leaves
// the player silent; the error is returned for the caller to log.
func (m *Music) Start(opts Options) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.playing || opts.Mute {
		return nil
	}

	track, closer, err := Track(opts.Path)
	if err != nil {
		return err
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		if closer != nil {
			_ = closer()
		}
		return fmt.Errorf("init speaker: %w", err)
	}

	m.ctrl = &beep.Ctrl{Streamer: Attenuate(track, opts.Volume)}
	m.closer = closer
	m.playing = true
	speaker.Play(m.ctrl)
	m.log.Info("background music started", "track", trackName(opts.Path), "volume", opts.Volume)
	return nil
}

// Playing reports whether music is running.
func (m *Music) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

// Stop silences the music and releases the track. Safe to call when the
// player never started.
func (m *Music) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.playing {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
	if m.closer != nil {
		if err := m.closer(); err != nil {
			m.log.Warn("close track", "err", err)
		}
	}
	m.ctrl, m.closer, m.playing = nil, nil, false
}

// Track builds the endless stream for path at the player's sample rate. An
// empty path yields the generated ambience. The returned closer, if any,
// releases the file.
func Track(path string) (beep.Streamer, func() error, error) {
	if path == "" {
		s, err := Ambience()
		return s, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open track: %w", err)
	}
	dec, format, err := mp3.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	var s beep.Streamer = beep.Loop(-1, dec)
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, s)
	}
	return s, dec.Close, nil
}

// Ambience renders one loop of a low city hum into memory and returns it
// looping forever.
func Ambience() (beep.Streamer, error) {
	hum, err := generators.SineTone(sampleRate, 55)
	if err != nil {
		return nil, fmt.Errorf("hum: %w", err)
	}
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)
	n := sampleRate.N(ambienceLength)
	buf.Append(beep.Take(n, beep.Mix(
		&effects.Volume{Streamer: hum, Base: 2, Volume: -4},
		newPad(sampleRate, n),
	)))
	return beep.Loop(-1, buf.Streamer(0, buf.Len())), nil
}

// Attenuate scales s by a linear gain. A gain of zero or less is silent.
func Attenuate(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	if gain <= 0 {
		v.Silent = true
		return v
	}
	v.Volume = math.Log2(min(gain, 1))
	return v
}

func trackName(path string) string {
	if path == "" {
		return "ambience"
	}
	return path
}

// pad is a slow two-voice chord whose swell period divides the loop length,
// so the buffered loop has no seam.
type pad struct {
	sr     beep.SampleRate
	pos    int
	period int
}

func newPad(sr beep.SampleRate, period int) *pad {
	return &pad{sr: sr, period: period}
}

func (p *pad) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(p.pos) / float64(p.sr)
		cycle := float64(p.pos%p.period) / float64(p.period)
		swell := 0.5 - 0.5*math.Cos(2*math.Pi*cycle)
		v := 0.12 * swell * (math.Sin(2*math.Pi*220*t) + 0.6*math.Sin(2*math.Pi*330*t))
		samples[i][0] = v
		samples[i][1] = v
		p.pos++
	}
	return len(samples), true
}

func (p *pad) Err() error { return nil }
