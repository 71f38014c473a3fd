package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-froggr/internal/config"
	"github.com/vovakirdan/tui-froggr/internal/games/froggr"
)

// Player mixes sound effects onto the system speaker.
// Until Init succeeds every Play is a no-op, so the game runs the same
// without an audio device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewPlayer creates a player for the configured sample rate and volume.
func NewPlayer(cfg config.SoundConfig) *Player {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(rate),
		volume: cfg.Volume,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts a sound effect and returns immediately.
func (p *Player) Play(s froggr.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	st := Effect(s, p.rate, p.volume)
	if st == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Open returns a sound player for the configuration. When sound is disabled
// or no audio device is available it returns a player that discards events.
func Open(cfg config.SoundConfig, logger *log.Logger) froggr.SoundPlayer {
	if !cfg.Enabled {
		return froggr.NopSound{}
	}

	p := NewPlayer(cfg)
	if err := p.Init(); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
		return froggr.NopSound{}
	}
	if logger != nil {
		logger.Debug("audio ready", "sample_rate", int(p.rate), "volume", p.volume)
	}
	return p
}
